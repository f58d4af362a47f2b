// Package integrations provides the HTTP plumbing for upstream APIs.
//
// [Client] is embedded by each upstream client (currently only [github]).
// It handles:
//   - HTTP requests with retry for transient failures
//   - Response caching through any [cache.Cache] backend
//   - Rate-limit detection from Retry-After and X-RateLimit-* headers
//   - Request and cache events reported to [observability] hooks
//
// # Errors
//
// Failures are reported with sentinel errors ([ErrNotFound], [ErrNetwork],
// [ErrUnauthorized], [ErrForbidden], [ErrRateLimited]) so callers can map
// them with errors.Is. Network failures and 5xx responses are wrapped in
// [httputil.RetryableError] and retried by [Client.Cached].
package integrations

package integrations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/WJZ-P/CommitCraft/pkg/buildinfo"
)

const httpTimeout = 15 * time.Second

// UserAgent identifies CommitCraft to upstream APIs.
var UserAgent = buildinfo.UserAgent()

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized is returned for 401 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned for 403 responses that are not rate limits.
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited is returned for 429 responses and exhausted quotas.
	ErrRateLimited = errors.New("rate limited")
)

// RateLimitError carries the upstream's retry hint.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return ErrRateLimited.Error() + ": retry after " + e.RetryAfter.Round(time.Second).String()
	}
	return ErrRateLimited.Error()
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// rateLimit inspects the Retry-After and X-RateLimit-* headers of a 403 or
// 429 response. It returns nil when the response is not a rate limit.
func rateLimit(resp *http.Response, now time.Time) *RateLimitError {
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil {
			return &RateLimitError{RetryAfter: time.Duration(secs) * time.Second}
		}
	}
	if resp.Header.Get("X-RateLimit-Remaining") == "0" {
		e := &RateLimitError{}
		if reset, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
			e.RetryAfter = max(0, time.Unix(reset, 0).Sub(now))
		}
		return e
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{}
	}
	return nil
}

// NewHTTPClient creates an HTTP client with a standard timeout for upstream requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

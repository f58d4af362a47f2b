// Package httputil provides HTTP helpers shared by the upstream clients.
//
// [Retry] wraps an operation with exponential backoff. Only errors wrapped
// in [RetryableError] are retried, so callers decide what is transient:
// typically network failures, 5xx responses and 429 rate limits.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// Defaults: 3 attempts, 1 second initial delay, doubling after each failure.
package httputil

package httputil

import (
	"context"
	"errors"
	"time"
)

// MaxHintedWait caps how long [Retry] honors a server's retry hint. Longer
// hints (an exhausted hourly quota) are not worth blocking a render for.
const MaxHintedWait = 10 * time.Second

// RetryableError marks err as transient. After, when positive, is the wait
// the server asked for (a Retry-After header) and replaces the backoff delay
// for the next attempt.
type RetryableError struct {
	Err   error
	After time.Duration
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry calls fn until it succeeds, returns an error that is not a
// [RetryableError], or has been called attempts times. The delay doubles
// after each failure. Cancelling ctx aborts the wait with ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		var re *RetryableError
		if !errors.As(err, &re) {
			return err
		}
		if i == attempts-1 {
			break
		}

		wait := delay
		if re.After > 0 {
			wait = min(re.After, MaxHintedWait)
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
	return err
}

// RetryWithBackoff is Retry with 3 attempts starting at one second.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

// IsRetryable reports whether err is wrapped in a [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// Retryable wraps err so that [Retry] attempts the operation again.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// RetryAfter wraps err as retryable after the server-provided wait d. Hints
// beyond [MaxHintedWait] are not retried: err is returned unchanged.
func RetryAfter(err error, d time.Duration) error {
	if err == nil || d > MaxHintedWait {
		return err
	}
	return &RetryableError{Err: err, After: d}
}

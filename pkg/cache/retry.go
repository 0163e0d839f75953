package cache

import (
	"context"
	"errors"
	"time"
)

// Connection attempts for remote backends. A server that is still starting
// (e.g. alongside the mosaic server in a compose file) gets about 3.5s.
const (
	connectAttempts = 4
	connectDelay    = 500 * time.Millisecond
)

// retryableError marks a failure worth another attempt.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// retryable wraps err so that [retry] attempts the operation again.
func retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

// retry executes fn up to attempts times, doubling delay after each failure.
// Only errors wrapped with [retryable] are retried; the last error is
// returned unwrapped, or ctx.Err() if ctx ends first.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		var re *retryableError
		if !errors.As(err, &re) {
			return err
		}
		lastErr = re.err

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

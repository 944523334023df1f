package client

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Read operations retry on transient failure: a transport-level error
// or a 5xx response. The policy is deliberately fixed-count and
// fixed-delay; writes never go through it.
const (
	defaultReadAttempts = 3
	defaultRetryDelay   = time.Second
)

// httpStatusError marks a non-2xx response so the retry loop can tell
// server faults from client faults.
type httpStatusError struct {
	status int
	path   string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.path, e.status)
}

func isRetryable(err error) bool {
	var se *httpStatusError
	if errors.As(err, &se) {
		return se.status >= 500
	}
	// Anything without a status is a transport failure.
	return true
}

// withRetry runs fn up to attempts times, sleeping delay between
// tries. 4xx responses and context cancellation propagate immediately.
func withRetry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return lastErr
}

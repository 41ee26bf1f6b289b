package store

import (
	"context"
	"time"
)

// Connection attempts for network backends. The delay doubles per attempt.
const (
	connectAttempts = 3
	connectDelay    = 500 * time.Millisecond
)

// retry runs fn up to attempts times, sleeping delay (doubling) between
// failures. It returns the last error, or ctx.Err() if ctx ends first.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error
	for i := range attempts {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
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

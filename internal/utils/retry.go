package utils

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// RetryConfig tunes Retry. Delay doubles on every attempt.
type RetryConfig struct {
	MaxRetries int
	MaxJitter  time.Duration
	Delay      time.Duration
	// Permanent reports errors not worth retrying, optional
	Permanent func(error) bool
}

// backoff is the wait after the given failed attempt, counted from zero
func (rc *RetryConfig) backoff(attempt int) time.Duration {
	wait := rc.Delay << attempt
	if rc.MaxJitter > 0 {
		wait += rand.N(rc.MaxJitter) // #nosec G404
	}
	return wait
}

// Retry calls fn until it succeeds, fails permanently,
// runs out of attempts or the context is done.
func Retry[T any](ctx context.Context, rc *RetryConfig, fn func() (T, error)) (T, error) {

	var zero T
	attempts := max(rc.MaxRetries, 1)

	for attempt := 0; ; attempt++ {
		result, err := fn()
		switch {
		case err == nil:
			return result, nil
		case rc.Permanent != nil && rc.Permanent(err):
			return zero, err
		case attempt+1 >= attempts:
			return zero, fmt.Errorf("gave up after %d attempts; %w", attempts, err)
		}

		timer := time.NewTimer(rc.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, fmt.Errorf("%w; last error: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}
}

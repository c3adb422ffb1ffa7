package provider

import (
	"context"
	"time"

	"trendboard/pkg/trends"
)

// retrier re-runs provider calls on transport failures with exponential
// backoff. Validation and empty-result outcomes are never retried; they
// are stable answers, not transient faults.
type retrier struct {
	maxRetries        int
	retryDelay        time.Duration
	backoffMultiplier float64
}

func newRetrier(maxRetries int, retryDelay time.Duration) *retrier {
	return &retrier{
		maxRetries:        maxRetries,
		retryDelay:        retryDelay,
		backoffMultiplier: 2.0,
	}
}

// Execute runs fn until it succeeds, fails with a non-retryable error,
// or the retry budget is spent.
func (r *retrier) Execute(ctx context.Context, fn func() error) error {
	var lastErr error
	delay := r.retryDelay

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !trends.IsTransport(err) {
			return err
		}
		if attempt == r.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * r.backoffMultiplier)
	}
	return lastErr
}

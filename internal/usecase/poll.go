package usecase

import (
	"context"
	"errors"
	"time"
)

// ErrAttemptsExhausted is returned by a bounded RetryPolicy when the probe never succeeded.
var ErrAttemptsExhausted = errors.New("retry attempts exhausted")

// RetryPolicy retries a probe with a fixed delay between attempts.
type RetryPolicy struct {
	Interval    time.Duration
	MaxAttempts int // 0 retries until the probe succeeds or ctx ends

	// Sleep waits between attempts. Defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewRetryPolicy creates an unbounded retry policy.
func NewRetryPolicy(interval time.Duration) RetryPolicy {
	return RetryPolicy{Interval: interval}
}

// Poll runs probe until it reports success and returns the number of attempts made.
func (p RetryPolicy) Poll(ctx context.Context, probe func() bool) (int, error) {
	_, attempts, err := PollFor(ctx, p, func() (struct{}, bool) {
		return struct{}{}, probe()
	})
	return attempts, err
}

// PollFor runs probe until it yields a value and returns that value with the attempt count.
func PollFor[T any](ctx context.Context, p RetryPolicy, probe func() (T, bool)) (T, int, error) {
	var zero T
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, attempt - 1, err
		}
		if v, ok := probe(); ok {
			return v, attempt, nil
		}
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return zero, attempt, ErrAttemptsExhausted
		}
		if err := sleep(ctx, p.Interval); err != nil {
			return zero, attempt, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

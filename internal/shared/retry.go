// Bounded retry with backoff for provider HTTP calls.
package shared

import (
	"context"
	"fmt"
	"time"
)

// DefaultMaxRetries is the number of additional attempts after the first failure.
const DefaultMaxRetries = 2

// Retry runs an operation up to MaxRetries+1 times, waiting Backoff(attempt)
// between attempts. Attempts are strictly sequential; the zero value is not
// usable, construct with [NewRetry].
type Retry struct {
	MaxRetries int
	Backoff    func(attempt int) time.Duration
	Sleep      func(ctx context.Context, d time.Duration) error
}

// NewRetry returns the default policy: 3 total attempts with linear backoff
// (1s after the first failure, 2s after the second).
func NewRetry() Retry {
	return Retry{
		MaxRetries: DefaultMaxRetries,
		Backoff:    LinearBackoff(time.Second),
		Sleep:      sleepContext,
	}
}

// LinearBackoff returns a backoff function yielding unit × attempt.
func LinearBackoff(unit time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * unit
	}
}

// Do invokes op until it succeeds or all attempts are exhausted.
//
// On exhaustion the last error is returned wrapped, so callers can still match
// it with [errors.Is]. The context is checked before every attempt.
func (r Retry) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := r.MaxRetries + 1
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if lastErr = op(ctx); lastErr == nil {
			return nil
		}

		if attempt == attempts {
			break
		}

		if err := r.Sleep(ctx, r.Backoff(attempt)); err != nil {
			return err
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", attempts, lastErr)
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

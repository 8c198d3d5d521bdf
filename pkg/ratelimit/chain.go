package ratelimit

import "context"

// Acquirer is implemented by every limiter in this package.
type Acquirer interface {
	Acquire(ctx context.Context) error
}

// Chain acquires from each limiter in order and stops at the first error.
type Chain []Acquirer

// Acquire implements Acquirer.
func (c Chain) Acquire(ctx context.Context) error {
	for _, l := range c {
		if err := l.Acquire(ctx); err != nil {
			return err //nolint: wrapcheck
		}
	}

	return nil
}

// Package retry runs an operation again with exponential backoff when it
// fails. It is a small facade over avast/retry-go configured with functional
// options.
//
//	r := retry.New(retry.WithAttempts(4), retry.WithDelay(200*time.Millisecond))
//	err := r.Execute(ctx, func() error { return send(ctx) })
package retry

import (
	"context"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, runs out of attempts or the
// context is done.
type Retry interface {
	// Execute calls operation at least once. It returns nil on the first
	// success, otherwise the last error (or all of them, see WithLastErrorOnly).
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
}

// Option customizes a Retry built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with backoff delays. Defaults: 3 attempts, 1s base
// delay, 5s maximum delay, only the last error returned.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retrygo.Do(operation,
		retrygo.Attempts(r.cfg.attempts),
		retrygo.Delay(r.cfg.delay),
		retrygo.MaxDelay(r.cfg.maxDelay),
		retrygo.DelayType(retrygo.BackOffDelay),
		retrygo.LastErrorOnly(r.cfg.lastErrOnly),
		retrygo.Context(ctx),
	)
}

// WithAttempts sets the total number of calls, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the delay before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly chooses between the final error (true) and every
// attempt's error joined together (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// Unrecoverable marks err so Execute returns it without further attempts.
// errors.Is and errors.As still see the wrapped error.
func Unrecoverable(err error) error {
	if err == nil {
		return nil
	}
	return retrygo.Unrecoverable(err)
}

// IsRecoverable reports whether err was not marked with Unrecoverable.
func IsRecoverable(err error) bool {
	return retrygo.IsRecoverable(err)
}

// Package retry runs operations against flaky collaborators (RPC providers,
// feeds, storage) with exponential backoff. It wraps avast/retry-go and keeps
// the configuration surface small: attempts, delay bounds and an optional
// per-retry hook.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(200*time.Millisecond))
//	err := r.Execute(ctx, func() error {
//	    head, err = rpc.BlockNumber(ctx)
//	    return err
//	})
//
// Operations can stop the loop early by returning Permanent(err).
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, fails permanently, runs out of
// attempts or ctx is done.
type Retry interface {
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is invoked after every failed attempt that will be retried.
// attempt is zero-based.
type OnRetryFunc func(attempt uint, err error)

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	onRetry     OnRetryFunc
}

// Option configures a Retry built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with the given options applied over the defaults:
// 3 attempts, 1s base delay, 5s max delay, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute runs operation with exponential backoff between attempts.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// Permanent marks err as not worth retrying. Execute returns it unwrapped-compatible
// (errors.Is still matches the original error).
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return retry.Unrecoverable(err)
}

// WithAttempts sets the total number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base backoff delay.
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

// WithLastErrorOnly controls whether only the final attempt's error is returned
// (true) or all attempt errors combined (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a hook invoked after each failed attempt.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}

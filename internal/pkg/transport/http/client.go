// Package http builds the retrying HTTP client shared by every outbound
// adapter (notification API, JSON-RPC providers, feeds). Retries are delegated
// to hashicorp/go-retryablehttp; its internal log lines are routed to the
// process logger at debug level.
package http

import (
	"context"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	verbose      bool
}

// Option configures the client built by NewClient.
type Option func(*config)

// leveledLogger adapts the package logger to retryablehttp.LeveledLogger.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, kv ...any) { logger.Warn(context.Background(), msg, kv...) }
func (leveledLogger) Info(msg string, kv ...any)  { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Debug(msg string, kv ...any) { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Warn(msg string, kv ...any)  { logger.Debug(context.Background(), msg, kv...) }

// NewClient returns a retryablehttp.Client. Defaults: 5s per-request timeout,
// 1s-5s backoff, 2 retries, silent.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	if cfg.verbose {
		client.Logger = leveledLogger{}
	}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	return client
}

// WithTimeout bounds a single HTTP request, retries excluded.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retries.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retries.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithVerbose routes retryablehttp's request and retry logs to the process logger.
func WithVerbose(v bool) Option {
	return func(c *config) {
		c.verbose = v
	}
}

// Package logger provides the process-wide sugared Zap logger used by every
// showrunner. Log calls take a context so that the active trace and span IDs
// are attached to each entry, and an OpenTelemetry bridge core is teed in
// when the telemetry package has registered a LoggerProvider.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// baseLogger is replaced by Init. Until then every call is discarded.
	baseLogger = zap.NewNop().Sugar()

	initBaseLoggerOnce sync.Once
)

type config struct {
	level       string
	serviceName string
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level ("debug", "info", "warn", "error", ...).
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithServiceName names the instrumentation scope of the OTEL bridge and adds a
// "service" field to every entry.
func WithServiceName(name string) Option {
	return func(c *config) {
		c.serviceName = name
	}
}

// Init configures the global logger. Only the first successful call has any
// effect. It returns an error when the level cannot be parsed.
func Init(opts ...Option) error {
	cfg := config{level: "info", serviceName: "showrunners"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(cfg.serviceName, otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar().With("service", cfg.serviceName)
	})

	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return baseLogger.Sync()
}

// withTrace prepends the trace and span identifiers found in ctx, if any.
func withTrace(ctx context.Context, keysAndValues []any) []any {
	if ctx == nil {
		return keysAndValues
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return keysAndValues
	}

	return append([]any{"trace.id", sc.TraceID().String(), "span.id", sc.SpanID().String()}, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	baseLogger.Debugw(msg, withTrace(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	baseLogger.Infow(msg, withTrace(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	baseLogger.Warnw(msg, withTrace(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	baseLogger.Errorw(msg, withTrace(ctx, keysAndValues)...)
}

// Fatal logs a fatal-level message and exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	baseLogger.Fatalw(msg, withTrace(ctx, keysAndValues)...)
}

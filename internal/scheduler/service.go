// Package scheduler drives channel tasks and the retry sweep on fixed
// intervals. Every job runs in its own goroutine; a job that fails, times out
// or panics is logged and does not affect the others.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/telemetry"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/validator"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrDuplicateJob is returned by Start when two jobs share a name.
	ErrDuplicateJob = errors.New("duplicate job name")

	// errJobPanicked wraps the value recovered from a panicking run.
	errJobPanicked = errors.New("job panicked")
)

const defaultJobTimeout = 5 * time.Minute

type Service interface {
	Start(ctx context.Context) error
	Close()
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	jobs           []Job
	defaultTimeout time.Duration

	runs     metric.Int64Counter
	duration metric.Float64Histogram
}

var _ Service = (*service)(nil)

func (s *service) validate() error {
	seen := make(map[string]struct{}, len(s.jobs))

	for _, job := range s.jobs {
		if err := validator.Validate(job); err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}

		if _, ok := seen[job.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateJob, job.Name)
		}
		seen[job.Name] = struct{}{}
	}

	return nil
}

// Start launches every job and returns immediately.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.loop(ctx, job)
		}()
	}

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}

	logger.Info(ctx, "scheduler started", "scheduler.jobs", len(s.jobs))

	s.isStarted = true
	return nil
}

// Close cancels every job and waits for in-flight runs to return.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

func (s *service) loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	if job.RunOnStart {
		s.runOnce(ctx, job)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, job)
		}
	}
}

func (s *service) runOnce(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		return
	}

	timeout := job.Timeout
	if timeout == 0 {
		timeout = s.defaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := s.call(runCtx, job)

	status := "ok"
	if err != nil {
		status = "error"
		logger.Error(ctx, "job run failed",
			"job.name", job.Name,
			"error", err,
		)
	}

	attrs := metric.WithAttributes(
		attribute.String("job.name", job.Name),
		attribute.String("job.status", status),
	)
	s.runs.Add(ctx, 1, attrs)
	s.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func (s *service) call(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errJobPanicked, r)
		}
	}()

	return job.Run(ctx)
}

type config struct {
	defaultTimeout time.Duration
	meter          metric.Meter
}

type Option func(*config)

// WithDefaultTimeout bounds runs of jobs that set no Timeout.
func WithDefaultTimeout(d time.Duration) Option {
	return func(c *config) {
		c.defaultTimeout = d
	}
}

// WithMeter replaces the meter run metrics are created on.
func WithMeter(m metric.Meter) Option {
	return func(c *config) {
		c.meter = m
	}
}

func New(jobs []Job, opts ...Option) *service {
	cfg := config{
		defaultTimeout: defaultJobTimeout,
		meter:          telemetry.Meter(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	runs, err := cfg.meter.Int64Counter("showrunners.scheduler.runs",
		metric.WithDescription("Job runs by job name and status."),
	)
	if err != nil {
		logger.Warn(context.Background(), "could not create scheduler runs counter", "error", err)
		runs = noop.Int64Counter{}
	}

	duration, err := cfg.meter.Float64Histogram("showrunners.scheduler.run.duration",
		metric.WithDescription("Job run duration."),
		metric.WithUnit("s"),
	)
	if err != nil {
		logger.Warn(context.Background(), "could not create scheduler duration histogram", "error", err)
		duration = noop.Float64Histogram{}
	}

	return &service{
		jobs:           jobs,
		defaultTimeout: cfg.defaultTimeout,
		runs:           runs,
		duration:       duration,
	}
}

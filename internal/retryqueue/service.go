// Package retryqueue re-sends notifications that failed at dispatch time. The
// queue itself is a Store; Service.ProcessPending is one sweep over it and is
// meant to be driven by the scheduler.
package retryqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/telemetry"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ErrInvalidSweep is returned for non-positive batch limits or retry bounds.
var ErrInvalidSweep = errors.New("batch limit and max retries must be positive")

// Status is what a sweep did with one record.
type Status int

const (
	// StatusDelivered: the retry succeeded and the record was deleted.
	StatusDelivered Status = iota + 1
	// StatusAbandoned: the API rejected the payload for good and the record was deleted.
	StatusAbandoned
	// StatusRescheduled: the retry failed and the record waits for the next sweep.
	StatusRescheduled
	// StatusExhausted: the retry failed for the last allowed time and the record was deleted.
	StatusExhausted
	// StatusError: the store could not be updated.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusDelivered:
		return "delivered"
	case StatusAbandoned:
		return "abandoned"
	case StatusRescheduled:
		return "rescheduled"
	case StatusExhausted:
		return "exhausted"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome reports one processed record.
type Outcome struct {
	RecordID   uuid.UUID
	Status     Status
	RetryCount int
	Err        error
}

type Service interface {
	ProcessPending(ctx context.Context, batchLimit, maxRetries int) ([]Outcome, error)
}

type service struct {
	store  Store
	sender notify.Sender
	clock  func() time.Time

	attempts metric.Int64Counter
}

var _ Service = (*service)(nil)

// ProcessPending retries up to batchLimit records with fewer than maxRetries
// attempts. Records are processed concurrently and independently; the
// returned outcomes follow the order records were read in.
func (s *service) ProcessPending(ctx context.Context, batchLimit, maxRetries int) ([]Outcome, error) {
	if batchLimit <= 0 || maxRetries <= 0 {
		return nil, ErrInvalidSweep
	}

	records, err := s.store.FindPending(ctx, maxRetries, batchLimit)
	if err != nil {
		return nil, fmt.Errorf("loading pending notifications: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	type indexed struct {
		i       int
		outcome Outcome
	}

	resultCh := make(chan indexed, len(records))
	for i, record := range records {
		go func() {
			resultCh <- indexed{i: i, outcome: s.process(ctx, record, maxRetries)}
		}()
	}

	outcomes := make([]Outcome, len(records))
	for _, r := range chflow.Collect(ctx, resultCh, len(records)) {
		outcomes[r.i] = r.outcome
	}

	return outcomes, ctx.Err()
}

func (s *service) process(ctx context.Context, record Record, maxRetries int) Outcome {
	outcome := s.attempt(ctx, record, maxRetries)

	s.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("status", outcome.Status.String())))

	if outcome.Err != nil && outcome.Status == StatusError {
		logger.Error(ctx, "retry record update failed",
			"retry.id", record.ID,
			"retry.count", record.RetryCount,
			"error", outcome.Err,
		)
	} else {
		logger.Debug(ctx, "retry record processed",
			"retry.id", record.ID,
			"retry.status", outcome.Status.String(),
			"retry.count", outcome.RetryCount,
		)
	}

	return outcome
}

func (s *service) attempt(ctx context.Context, record Record, maxRetries int) Outcome {
	outcome := Outcome{RecordID: record.ID, RetryCount: record.RetryCount}

	sendErr := s.sender.Send(ctx, record.Payload)
	switch {
	case sendErr == nil:
		outcome.Status = StatusDelivered
	case errors.Is(sendErr, notify.ErrRejected):
		outcome.Status = StatusAbandoned
		outcome.Err = sendErr
	}

	if outcome.Status != 0 {
		if err := s.store.Delete(ctx, record.ID); err != nil {
			return Outcome{RecordID: record.ID, Status: StatusError, RetryCount: record.RetryCount, Err: err}
		}
		return outcome
	}

	record.RetryCount++
	record.LastAttempted = s.clock()
	outcome.RetryCount = record.RetryCount
	outcome.Err = sendErr

	if record.RetryCount >= maxRetries {
		outcome.Status = StatusExhausted
		if err := s.store.Delete(ctx, record.ID); err != nil {
			return Outcome{RecordID: record.ID, Status: StatusError, RetryCount: record.RetryCount, Err: err}
		}

		logger.Warn(ctx, "giving up on notification",
			"retry.id", record.ID,
			"retry.count", record.RetryCount,
			"channel.caip", record.Payload.Channel,
			"error", sendErr,
		)
		return outcome
	}

	outcome.Status = StatusRescheduled
	if err := s.store.Save(ctx, record); err != nil {
		return Outcome{RecordID: record.ID, Status: StatusError, RetryCount: record.RetryCount, Err: err}
	}

	return outcome
}

type config struct {
	clock func() time.Time
	meter metric.Meter
}

type Option func(*config)

// New returns a sweep over store that re-sends through sender.
func New(store Store, sender notify.Sender, opts ...Option) *service {
	cfg := config{
		clock: time.Now,
		meter: telemetry.Meter(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	attempts, err := cfg.meter.Int64Counter("showrunners.retry.attempts",
		metric.WithDescription("Retry sweep attempts by resulting status"),
	)
	if err != nil {
		logger.Warn(context.Background(), "could not create retry attempts counter", "error", err)
		attempts = noop.Int64Counter{}
	}

	return &service{
		store:    store,
		sender:   sender,
		clock:    cfg.clock,
		attempts: attempts,
	}
}

func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func WithMeter(m metric.Meter) Option {
	return func(c *config) {
		c.meter = m
	}
}

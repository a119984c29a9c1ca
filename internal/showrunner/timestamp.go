package showrunner

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/checkpoint"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TimeSource is the data side of a timestamp-checkpointed task (feeds,
// subgraphs, APIs without block numbers).
type TimeSource[T any] interface {
	Candidate[T]

	// Time is the publish time of item.
	Time(item T) time.Time

	// Fetch yields items published after since, in any order. It may also
	// yield older items; they are filtered out.
	Fetch(ctx context.Context, since time.Time, o Overrides) iter.Seq2[T, error]
}

// TimestampTask notifies every item strictly newer than its checkpoint, oldest
// first, and moves the checkpoint to the newest one. The whole source is read
// before anything is dispatched.
type TimestampTask[T any] struct {
	channel *ChannelContext
	name    string
	source  TimeSource[T]
	advance AdvancePolicy
	clock   func() time.Time
}

var _ Task = (*TimestampTask[struct{}])(nil)

func NewTimestampTask[T any](cc *ChannelContext, name string, source TimeSource[T], opts ...TaskOption) *TimestampTask[T] {
	cfg := newTaskConfig(opts)

	return &TimestampTask[T]{
		channel: cc,
		name:    name,
		source:  source,
		advance: cfg.advance,
		clock:   cfg.clock,
	}
}

func (t *TimestampTask[T]) Channel() string { return t.channel.Identity.Name }

func (t *TimestampTask[T]) Name() string { return t.name }

func (t *TimestampTask[T]) Run(ctx context.Context, mode RunMode) (summary Summary, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "showrunner.TimestampTask.Run", trace.WithAttributes(
		attribute.String("channel.name", t.Channel()),
		attribute.String("task.name", t.name),
		attribute.String("task.mode", mode.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	summary = Summary{Channel: t.Channel(), Task: t.name, Mode: mode.String()}

	if t.channel.Inoperable != nil {
		return summary, fmt.Errorf("%w: %w", ErrChannelInoperable, t.channel.Inoperable)
	}

	key := t.channel.checkpointKey(t.name)
	overrides := mode.Overrides()

	last, err := t.channel.Checkpoints.Get(ctx, key)
	coldStart := errors.Is(err, checkpoint.ErrNoCheckpointFound)
	if err != nil && !coldStart {
		return summary, fmt.Errorf("reading checkpoint %s: %w", key, err)
	}

	if coldStart && overrides.Since == nil {
		return t.seed(ctx, mode, key, summary)
	}

	since := time.Unix(last, 0)
	if overrides.Since != nil {
		since = *overrides.Since
	}
	summary.From = since.Unix()
	summary.To = summary.From

	var items []T
	for item, err := range t.source.Fetch(ctx, since, overrides) {
		if err != nil {
			return summary, fmt.Errorf("%w: %s/%s since %d: %w", ErrExternalFetch, t.Channel(), t.name, summary.From, err)
		}

		if t.source.Time(item).Unix() > summary.From {
			items = append(items, item)
		}
	}

	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(t.source.Time(a).Unix(), t.source.Time(b).Unix())
	})

	for _, item := range items {
		dispatch(ctx, t.channel, t.name, mode, t.source, item, &summary)
	}

	if len(items) > 0 {
		summary.To = t.source.Time(items[len(items)-1]).Unix()
	}

	if !mode.Persists() || len(items) == 0 || (t.advance == AdvanceOnNotify && summary.Notified() == 0) {
		logRun(ctx, summary)
		return summary, nil
	}

	if err := checkpoint.Advance(ctx, t.channel.Checkpoints, key, summary.To); err != nil {
		return summary, fmt.Errorf("advancing checkpoint %s: %w", key, err)
	}
	summary.CheckpointAdvanced = true

	logRun(ctx, summary)
	return summary, nil
}

func (t *TimestampTask[T]) seed(ctx context.Context, mode RunMode, key checkpoint.Key, summary Summary) (Summary, error) {
	now := t.clock().Unix()
	summary.From, summary.To, summary.Seeded = now, now, true

	if mode.Persists() {
		if err := t.channel.Checkpoints.Set(ctx, key, now); err != nil {
			return summary, fmt.Errorf("seeding checkpoint %s: %w", key, err)
		}
		summary.CheckpointAdvanced = true
	}

	logger.Info(ctx, "checkpoint seeded at current time",
		"channel.name", t.Channel(),
		"task.name", t.name,
		"checkpoint.key", key.String(),
		"checkpoint.value", now,
		"task.mode", mode.String(),
	)
	return summary, nil
}

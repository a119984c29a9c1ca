package showrunner

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/checkpoint"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/resilience/retry"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BlockRange is an inclusive range of block numbers.
type BlockRange struct {
	From int64
	To   int64
}

// BlockSource is the data side of a block-range task.
type BlockSource[T any] interface {
	Candidate[T]

	// Head returns the current chain head.
	Head(ctx context.Context) (int64, error)

	// Fetch yields the candidates of r in ascending chain order.
	Fetch(ctx context.Context, r BlockRange, o Overrides) iter.Seq2[T, error]
}

// BlockRangeTask polls a chain range by range. A run covers every block after
// the checkpoint up to the chain head; the first run only records the head.
type BlockRangeTask[T any] struct {
	channel *ChannelContext
	name    string
	source  BlockSource[T]
	advance AdvancePolicy
	retry   retry.Retry
}

var _ Task = (*BlockRangeTask[struct{}])(nil)

// TaskOption configures task helpers.
type TaskOption func(*taskConfig)

type taskConfig struct {
	advance AdvancePolicy
	retry   retry.Retry
	clock   func() time.Time
}

// WithAdvancePolicy sets when the checkpoint moves. Default AdvanceAlways.
func WithAdvancePolicy(p AdvancePolicy) TaskOption {
	return func(c *taskConfig) {
		c.advance = p
	}
}

// WithRetry retries head lookups.
func WithRetry(r retry.Retry) TaskOption {
	return func(c *taskConfig) {
		c.retry = r
	}
}

// WithClock replaces time.Now for tasks that seed from the current time.
func WithClock(clock func() time.Time) TaskOption {
	return func(c *taskConfig) {
		c.clock = clock
	}
}

func newTaskConfig(opts []TaskOption) taskConfig {
	cfg := taskConfig{
		advance: AdvanceAlways,
		retry:   retry.New(retry.WithAttempts(1)),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func NewBlockRangeTask[T any](cc *ChannelContext, name string, source BlockSource[T], opts ...TaskOption) *BlockRangeTask[T] {
	cfg := newTaskConfig(opts)

	return &BlockRangeTask[T]{
		channel: cc,
		name:    name,
		source:  source,
		advance: cfg.advance,
		retry:   cfg.retry,
	}
}

func (t *BlockRangeTask[T]) Channel() string { return t.channel.Identity.Name }

func (t *BlockRangeTask[T]) Name() string { return t.name }

func (t *BlockRangeTask[T]) Run(ctx context.Context, mode RunMode) (summary Summary, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "showrunner.BlockRangeTask.Run", trace.WithAttributes(
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

	if coldStart && overrides.FromBlock == nil {
		return t.seed(ctx, mode, key, summary)
	}

	summary.From = last + 1
	if overrides.FromBlock != nil {
		summary.From = *overrides.FromBlock
	}

	if overrides.ToBlock != nil {
		summary.To = *overrides.ToBlock
	} else if summary.To, err = t.head(ctx); err != nil {
		return summary, err
	}

	if summary.From > summary.To {
		logger.Debug(ctx, "no new blocks",
			"channel.name", t.Channel(),
			"task.name", t.name,
			"checkpoint.value", last,
		)
		return summary, nil
	}

	for item, err := range t.source.Fetch(ctx, BlockRange{From: summary.From, To: summary.To}, overrides) {
		if err != nil {
			return summary, fmt.Errorf("%w: %s/%s blocks %d-%d: %w", ErrExternalFetch, t.Channel(), t.name, summary.From, summary.To, err)
		}

		dispatch(ctx, t.channel, t.name, mode, t.source, item, &summary)
	}

	if !mode.Persists() || (t.advance == AdvanceOnNotify && summary.Notified() == 0) {
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

// seed records the current head without notifying anything, so that a fresh
// deployment does not replay the chain history.
func (t *BlockRangeTask[T]) seed(ctx context.Context, mode RunMode, key checkpoint.Key, summary Summary) (Summary, error) {
	head, err := t.head(ctx)
	if err != nil {
		return summary, err
	}

	summary.From, summary.To, summary.Seeded = head, head, true

	if mode.Persists() {
		if err := t.channel.Checkpoints.Set(ctx, key, head); err != nil {
			return summary, fmt.Errorf("seeding checkpoint %s: %w", key, err)
		}
		summary.CheckpointAdvanced = true
	}

	logger.Info(ctx, "checkpoint seeded at chain head",
		"channel.name", t.Channel(),
		"task.name", t.name,
		"checkpoint.key", key.String(),
		"checkpoint.value", head,
		"task.mode", mode.String(),
	)
	return summary, nil
}

func (t *BlockRangeTask[T]) head(ctx context.Context) (int64, error) {
	var head int64
	err := t.retry.Execute(ctx, func() error {
		var err error
		head, err = t.source.Head(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s/%s chain head: %w", ErrExternalFetch, t.Channel(), t.name, err)
	}
	return head, nil
}

func logRun(ctx context.Context, s Summary) {
	logger.Info(ctx, "task run finished",
		"channel.name", s.Channel,
		"task.name", s.Task,
		"task.mode", s.Mode,
		"range.from", s.From,
		"range.to", s.To,
		"candidates", s.Candidates,
		"sent", s.Sent,
		"queued", s.Queued,
		"dropped", s.Dropped,
		"simulated", s.Simulated,
		"checkpoint.advanced", s.CheckpointAdvanced,
	)
}

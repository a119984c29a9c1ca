package scheduler

import (
	"context"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/retryqueue"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"
)

// Job is one periodic unit of work. Runs of the same job never overlap; ticks
// that fire while a run is in progress are dropped.
type Job struct {
	Name     string        `validate:"required"`
	Interval time.Duration `validate:"gt=0"`

	// Timeout bounds a single run. Zero means the scheduler default.
	Timeout time.Duration `validate:"gte=0"`

	// RunOnStart triggers a first run as soon as the scheduler starts.
	RunOnStart bool

	Run func(ctx context.Context) error `validate:"required"`
}

// TaskJob runs task in live mode every interval.
func TaskJob(task showrunner.Task, interval, timeout time.Duration) Job {
	return Job{
		Name:       task.Channel() + ":" + task.Name(),
		Interval:   interval,
		Timeout:    timeout,
		RunOnStart: true,
		Run: func(ctx context.Context) error {
			_, err := task.Run(ctx, showrunner.Live())
			return err
		},
	}
}

// RetrySweepJob processes up to batchLimit queued notifications every interval.
func RetrySweepJob(svc retryqueue.Service, interval, timeout time.Duration, batchLimit, maxRetries int) Job {
	return Job{
		Name:     "retry:sweep",
		Interval: interval,
		Timeout:  timeout,
		Run: func(ctx context.Context) error {
			outcomes, err := svc.ProcessPending(ctx, batchLimit, maxRetries)
			if err != nil {
				return err
			}

			if len(outcomes) > 0 {
				logger.Info(ctx, "retry sweep finished", "retry.processed", len(outcomes))
			}
			return nil
		},
	}
}

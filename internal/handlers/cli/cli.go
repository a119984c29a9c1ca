package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/retryqueue"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/scheduler"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"

	"github.com/urfave/cli/v3"
)

// TaskRegistry resolves the tasks the run and channels commands act on.
type TaskRegistry interface {
	Task(channel, name string) (showrunner.Task, error)
	Channels() []showrunner.ChannelStatus
}

// SweepDefaults are the retry command's flag defaults.
type SweepDefaults struct {
	BatchLimit int
	MaxRetries int
}

// Run initializes and executes the showrunners CLI application.
//
// It registers all available commands:
//
//   - `start`: Runs every channel task and the retry sweep on their schedules.
//   - `run`: Runs one task once, optionally simulated or with overrides.
//   - `retry`: Processes one batch of the retry queue.
//   - `channels`: Lists the registered channels.
func Run(ctx context.Context, sched scheduler.Service, registry TaskRegistry, sweeper retryqueue.Service, defaults SweepDefaults) error {
	return newApp(sched, registry, sweeper, defaults).Run(ctx, os.Args)
}

func newApp(sched scheduler.Service, registry TaskRegistry, sweeper retryqueue.Service, defaults SweepDefaults) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "showrunners",
		Description:           "Runs notification channels that watch external sources and deliver Push notifications.",
		Usage:                 "showrunners [command] [flags]",
		Commands: []*cli.Command{
			startCommand(sched),
			runTaskCommand(registry),
			retrySweepCommand(sweeper, defaults),
			listChannelsCommand(registry),
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

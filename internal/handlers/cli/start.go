package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/scheduler"

	"github.com/urfave/cli/v3"
)

// startCommand returns a CLI command that starts the scheduler.
//
// Usage example:
//
//	showrunners start
//
// The process runs until it receives SIGINT or SIGTERM, or ctx is cancelled.
func startCommand(sched scheduler.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts every registered channel task and the retry sweep on their intervals.",
		Usage:       "Runs the scheduler. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := sched.Start(ctx); err != nil {
				return err
			}
			defer sched.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}

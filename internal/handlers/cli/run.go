package cli

import (
	"context"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"

	"github.com/urfave/cli/v3"
)

// overrideFlags are the flags that switch a manual run to override mode.
var overrideFlags = []string{"from", "to", "since", "address", "transmit"}

// runTaskCommand returns a CLI command that runs one task once and prints its
// summary as JSON.
//
// Usage example:
//
//	showrunners run --channel governance --task proposals --from 100 --to 200
func runTaskCommand(registry TaskRegistry) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Runs a single channel task once.",
		Usage:       "Manual trigger. Without flags the run is live; --simulate never sends nor persists; range flags never persist.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "channel",
				Usage:    "Channel name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "task",
				Usage:    "Task name within the channel",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "simulate",
				Usage: "Build and sign notifications without sending them",
			},
			&cli.Int64Flag{
				Name:  "from",
				Usage: "First block of the range",
			},
			&cli.Int64Flag{
				Name:  "to",
				Usage: "Last block of the range",
			},
			&cli.Int64Flag{
				Name:  "since",
				Usage: "Unix timestamp to read timestamped sources from",
			},
			&cli.StringSliceFlag{
				Name:  "address",
				Usage: "Contract addresses replacing the configured ones",
			},
			&cli.BoolFlag{
				Name:  "transmit",
				Usage: "Send the notifications of an override run",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			task, err := registry.Task(c.String("channel"), c.String("task"))
			if err != nil {
				return err
			}

			summary, runErr := task.Run(ctx, runMode(c))
			if err := writeJSON(c.Root().Writer, summary); err != nil {
				return err
			}

			return runErr
		},
	}
}

func runMode(c *cli.Command) showrunner.RunMode {
	isOverride := false
	for _, name := range overrideFlags {
		isOverride = isOverride || c.IsSet(name)
	}

	if !isOverride {
		if c.Bool("simulate") {
			return showrunner.Simulated()
		}
		return showrunner.Live()
	}

	o := showrunner.Overrides{
		Addresses: c.StringSlice("address"),
		Transmit:  c.Bool("transmit") && !c.Bool("simulate"),
	}
	if c.IsSet("from") {
		from := c.Int64("from")
		o.FromBlock = &from
	}
	if c.IsSet("to") {
		to := c.Int64("to")
		o.ToBlock = &to
	}
	if c.IsSet("since") {
		since := time.Unix(c.Int64("since"), 0)
		o.Since = &since
	}

	return showrunner.Override(o)
}

package cli

import (
	"context"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/retryqueue"

	"github.com/urfave/cli/v3"
)

type sweepReport struct {
	Processed int            `json:"processed"`
	Statuses  map[string]int `json:"statuses"`
}

// retrySweepCommand returns a CLI command that processes one batch of the
// retry queue and prints how each record ended.
//
// Usage example:
//
//	showrunners retry --batch 20 --max-retries 3
func retrySweepCommand(sweeper retryqueue.Service, defaults SweepDefaults) *cli.Command {
	return &cli.Command{
		Name:        "retry",
		Description: "Re-sends queued notifications once.",
		Usage:       "Processes up to --batch records with fewer than --max-retries attempts.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "batch",
				Usage: "Maximum number of records to process",
				Value: defaults.BatchLimit,
			},
			&cli.IntFlag{
				Name:  "max-retries",
				Usage: "Attempts after which a record is discarded",
				Value: defaults.MaxRetries,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			outcomes, err := sweeper.ProcessPending(ctx, c.Int("batch"), c.Int("max-retries"))
			if err != nil {
				return err
			}

			report := sweepReport{Processed: len(outcomes), Statuses: make(map[string]int)}
			for _, o := range outcomes {
				report.Statuses[o.Status.String()]++
			}

			return writeJSON(c.Root().Writer, report)
		},
	}
}

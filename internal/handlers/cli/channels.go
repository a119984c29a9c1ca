package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

// listChannelsCommand returns a CLI command that prints every registered
// channel with its tasks and whether it can sign.
func listChannelsCommand(registry TaskRegistry) *cli.Command {
	return &cli.Command{
		Name:        "channels",
		Description: "Lists the registered channels and their tasks.",
		Usage:       "Prints channels as JSON. Inoperable channels carry the key resolution error.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return writeJSON(c.Root().Writer, registry.Channels())
		},
	}
}

// Package commands wires the horizon command line.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/horizon/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "horizon",
		Short: base.Wrap80("Travel Assist: hidden gems along the road ahead, revealed as you drive."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addPlaces(topLevel)
	addMoods(topLevel)
	addScan(topLevel)
	addCatalog(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}

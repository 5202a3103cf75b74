package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/horizon/pkg/commands/options"
	"tableflip.dev/horizon/pkg/runner/places"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "list the moods places can be filtered by",
		Example: `
horizon moods
horizon moods --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := places.Moods{JSON: output.JSON}
			return output.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

package options

import (
	"github.com/spf13/cobra"
)

// DisplayOptions tune the terminal UI.
type DisplayOptions struct {
	Theme string
}

// AddDisplayArgs registers --theme on cmd.
func AddDisplayArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().StringVar(&o.Theme, "theme", "",
		"Palette to start with: dark, light or auto.")
	_ = cmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"dark", "light", "auto"}, cobra.ShellCompDirectiveNoFileComp
	})
}

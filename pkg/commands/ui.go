package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/horizon/pkg/commands/options"
	"tableflip.dev/horizon/pkg/config"
	"tableflip.dev/horizon/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	co := &options.CatalogOptions{}
	do := &options.DisplayOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the travel assistant",
		Example: `
horizon ui
horizon ui --mood rainy --theme light
horizon ui --catalog ~/trips/coast.yaml --interval 5s
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui needs an interactive terminal, try horizon scan")
			}
			env, err := loadEnv(co)
			if err != nil {
				return err
			}
			defer env.Close()

			if do.Theme != "" {
				theme, err := config.ParseTheme(do.Theme)
				if err != nil {
					return err
				}
				env.cfg.Theme = theme
			}

			i := ui.UI{
				Provider: env.provider(),
				Interval: env.interval(),
				Mood:     mo.Mood,
				DarkMode: env.cfg.DarkMode(),
				Dedupe:   env.cfg.Dedupe,
				Watch:    env.watch(),
				Version:  version,
				Logger:   env.logger,
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddMoodArg(cmd, mo)
	options.AddCatalogArgs(cmd, co)
	options.AddIntervalArg(cmd, co)
	options.AddWatchArg(cmd, co)
	options.AddDisplayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

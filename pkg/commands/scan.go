package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/horizon/pkg/commands/options"
	"tableflip.dev/horizon/pkg/runner/scan"
)

func addScan(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	co := &options.CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "print discoveries as they come into range, without the ui",
		Long: options.Wrap80(`Run one discovery session in the terminal. Places matching the mood are printed one at a time at the reveal interval until the catalog is exhausted or the scan is interrupted. With --json each reveal is one JSON object per line.`),
		Example: `
horizon scan
horizon scan --mood sunset --interval 1s
horizon scan --json | jq .place.title
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(co)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
			defer stop()

			s := scan.Scan{
				Provider: env.provider(),
				Mood:     mo.Mood,
				Interval: env.interval(),
				JSON:     output.JSON,
				Logger:   env.logger,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddMoodArg(cmd, mo)
	options.AddCatalogArgs(cmd, co)
	options.AddIntervalArg(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/horizon/pkg/commands/options"
	"tableflip.dev/horizon/pkg/runner/places"
)

func addPlaces(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	co := &options.CatalogOptions{}
	i := &options.InteractiveOptions{}
	var showID, wide bool

	cmd := &cobra.Command{
		Use:     "places",
		Aliases: []string{"place", "ls"},
		Short:   "list the places in the catalog",
		Example: `
horizon places
horizon places --mood nature
horizon places -i
horizon places --mood cafe --json
`,
		ValidArgs: []string{},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				m, err := options.PromptMood(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				mo.Mood = m
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(co)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			l := places.List{
				Provider: env.provider(),
				Mood:     mo.Mood,
				ShowID:   showID,
				Wide:     wide,
				JSON:     output.JSON,
			}
			err = l.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddMoodArg(cmd, mo)
	options.AddCatalogArgs(cmd, co)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&showID, "id", false, "Show place ids.")
	cmd.Flags().BoolVarP(&wide, "wide", "w", false, "Include the summary column.")

	topLevel.AddCommand(cmd)
}

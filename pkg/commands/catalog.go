package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/horizon/pkg/commands/options"
	"tableflip.dev/horizon/pkg/place"
)

func addCatalog(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "print the catalog as YAML",
		Long: options.Wrap80(`Print the places catalog in the YAML layout accepted by --catalog. Without --catalog the built-in places are printed, which makes a good starting point for a catalog of your own.`),
		Example: `
horizon catalog > ~/trips/coast.yaml
horizon catalog --catalog ~/trips/coast.yaml
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(co)
			if err != nil {
				return err
			}
			defer env.Close()

			all, err := env.provider().ListPlaces(cmdContext(cmd))
			if err != nil {
				return err
			}
			raw, err := place.MarshalCatalog(all)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(raw))
			return err
		},
	}

	options.AddCatalogArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

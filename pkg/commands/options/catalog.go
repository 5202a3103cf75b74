package options

import (
	"time"

	"github.com/spf13/cobra"
)

// CatalogOptions point commands at a catalog file and reveal cadence. Zero
// values defer to the loaded configuration.
type CatalogOptions struct {
	Path     string
	Interval time.Duration
	NoWatch  bool
}

// AddCatalogArgs registers --catalog on cmd.
func AddCatalogArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().StringVar(&o.Path, "catalog", "",
		"Path to a YAML or JSON places catalog. Defaults to the built-in catalog.")
}

// AddIntervalArg registers --interval on cmd.
func AddIntervalArg(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().DurationVar(&o.Interval, "interval", 0,
		"Time between discoveries, e.g. 3s.")
}

// AddWatchArg registers --no-watch on cmd.
func AddWatchArg(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().BoolVar(&o.NoWatch, "no-watch", false,
		"Do not reload the catalog file when it changes.")
}

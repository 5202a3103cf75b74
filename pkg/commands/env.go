package commands

import (
	"io"
	"log/slog"
	"time"

	"tableflip.dev/horizon/pkg/commands/options"
	"tableflip.dev/horizon/pkg/config"
	"tableflip.dev/horizon/pkg/logging"
	"tableflip.dev/horizon/pkg/place"
)

// environment is the configuration, logger and catalog a command runs with.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	co     *options.CatalogOptions
}

func loadEnv(co *options.CatalogOptions) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if co == nil {
		co = &options.CatalogOptions{}
	}
	return &environment{cfg: cfg, logger: logger, closer: closer, co: co}, nil
}

func (e *environment) Close() error {
	return e.closer.Close()
}

func (e *environment) catalogPath() string {
	if e.co.Path != "" {
		return e.co.Path
	}
	return e.cfg.CatalogPath
}

// provider reads the catalog file when one is configured and falls back to
// the built-in places.
func (e *environment) provider() place.Provider {
	if path := e.catalogPath(); path != "" {
		return place.NewFileProvider(path)
	}
	return place.NewStatic(nil)
}

func (e *environment) interval() time.Duration {
	if e.co.Interval > 0 {
		return e.co.Interval
	}
	return e.cfg.RevealInterval
}

func (e *environment) watch() bool {
	return e.catalogPath() != "" && e.cfg.WatchCatalog && !e.co.NoWatch
}

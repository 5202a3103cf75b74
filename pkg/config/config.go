// Package config loads horizon settings from a .horizon file, HORIZON_*
// environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"

	"tableflip.dev/horizon/pkg/timeutil"
)

// Theme selects the display palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeAuto  Theme = "auto"
)

// Config is the resolved configuration.
type Config struct {
	RevealInterval time.Duration
	Theme          Theme
	CatalogPath    string
	WatchCatalog   bool
	Dedupe         bool
	LogFile        string
	LogLevel       string
}

// Load reads configuration. A missing config file is not an error.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("reveal.interval", "3s")
	v.SetDefault("display.theme", string(ThemeDark))
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.watch", true)
	v.SetDefault("journal.dedupe", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigName(".horizon") // .yaml is implicit
	v.SetEnvPrefix("HORIZON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("HORIZON_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	interval, err := timeutil.ParseInterval(v.GetString("reveal.interval"))
	if err != nil {
		return nil, fmt.Errorf("config: reveal.interval: %w", err)
	}

	theme, err := ParseTheme(v.GetString("display.theme"))
	if err != nil {
		return nil, err
	}

	catalogPath, err := expand(v.GetString("catalog.path"))
	if err != nil {
		return nil, err
	}
	logFile, err := expand(v.GetString("log.file"))
	if err != nil {
		return nil, err
	}

	return &Config{
		RevealInterval: interval,
		Theme:          theme,
		CatalogPath:    catalogPath,
		WatchCatalog:   v.GetBool("catalog.watch"),
		Dedupe:         v.GetBool("journal.dedupe"),
		LogFile:        logFile,
		LogLevel:       strings.ToLower(v.GetString("log.level")),
	}, nil
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDark, ThemeLight, ThemeAuto:
		return t, nil
	case "":
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("config: unknown theme %q (want dark, light or auto)", s)
	}
}

// DarkMode resolves the theme to a night mode flag. Auto asks the terminal
// for its background colour.
func (c *Config) DarkMode() bool {
	switch c.Theme {
	case ThemeLight:
		return false
	case ThemeAuto:
		return termenv.HasDarkBackground()
	default:
		return true
	}
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	out, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("config: expand %q: %w", path, err)
	}
	return out, nil
}

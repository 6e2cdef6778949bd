// Package config loads tour settings from defaults, an optional TOML file,
// and TOUR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Profiles
const (
	ProfileDefault = "default"
	ProfileDevel   = "devel"
)

// Config holds application configuration.
type Config struct {
	Profile   string      `mapstructure:"profile"`
	PagesFile string      `mapstructure:"pages_file"`
	Locale    string      `mapstructure:"locale"`
	OSRelease string      `mapstructure:"os_release"`
	LogFile   string      `mapstructure:"log_file"`
	AltScreen bool        `mapstructure:"alt_screen"`
	Mouse     bool        `mapstructure:"mouse"`
	Trace     TraceConfig `mapstructure:"trace"`
}

// TraceConfig gates OTLP export. The endpoint itself comes from the
// standard OTEL_EXPORTER_OTLP_ENDPOINT variable.
type TraceConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Devel reports whether the devel profile is active.
func (c Config) Devel() bool { return c.Profile == ProfileDevel }

// Validate rejects unknown profiles.
func (c Config) Validate() error {
	switch c.Profile {
	case ProfileDefault, ProfileDevel:
		return nil
	default:
		return fmt.Errorf("config: unknown profile %q", c.Profile)
	}
}

// Path returns the config file location: TOUR_CONFIG, else
// $XDG_CONFIG_HOME/tour/config.toml, else ~/.config/tour/config.toml.
func Path() string {
	if p := os.Getenv("TOUR_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "tour", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TOUR_.
// A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("profile", ProfileDefault)
	v.SetDefault("pages_file", "")
	v.SetDefault("locale", "")
	v.SetDefault("os_release", "")
	v.SetDefault("log_file", "")
	v.SetDefault("alt_screen", true)
	v.SetDefault("mouse", true)
	v.SetDefault("trace.enabled", true)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("TOUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Locale == "" {
		c.Locale = SystemLocale()
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SystemLocale returns the message locale from the usual POSIX variables.
func SystemLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

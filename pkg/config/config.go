// Package config loads uconv settings from an optional YAML file and
// UCONV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/migliorelli/uconv/pkg/units"
)

// Config holds all configuration for the application
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DefaultsConfig holds the units a new conversion starts with
type DefaultsConfig struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
	File   string `mapstructure:"file"`   // interactive mode only
}

// UIConfig holds interactive screen settings
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "UCONV"

// SearchPaths returns the directories searched for uconv.yaml when no
// explicit path is given.
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "uconv"))
	}
	return paths
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("defaults.from", units.Centimeters.Key())
	v.SetDefault("defaults.to", units.Meters.Key())
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("ui.alt_screen", true)
}

// Load reads configuration from path, or from uconv.yaml in SearchPaths
// when path is empty. A missing file is only an error when path was given.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("uconv")
		v.SetConfigType("yaml")
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		if used := v.ConfigFileUsed(); used != "" {
			return nil, fmt.Errorf("%s: %w", used, err)
		}
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the default units name real units.
func (c *Config) Validate() error {
	if _, err := units.Parse(c.Defaults.From); err != nil {
		return fmt.Errorf("defaults.from: %w", err)
	}
	if _, err := units.Parse(c.Defaults.To); err != nil {
		return fmt.Errorf("defaults.to: %w", err)
	}
	return nil
}

// DefaultUnits returns the configured starting units. Invalid names fall
// back to centimeters and meters.
func (c *Config) DefaultUnits() (from, to units.Unit) {
	from, err := units.Parse(c.Defaults.From)
	if err != nil {
		from = units.Centimeters
	}
	to, err = units.Parse(c.Defaults.To)
	if err != nil {
		to = units.Meters
	}
	return from, to
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a new slog.Logger writing to w based on the configuration
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(c.Log.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

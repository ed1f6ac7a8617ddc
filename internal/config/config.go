package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Toggle ToggleConfig
	Log    LogConfig
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr string
	// Key signs and encrypts switch props. Empty means a random key per
	// process, which invalidates rendered pages on restart.
	Key string
}

// ToggleConfig holds the demo switch settings.
type ToggleConfig struct {
	DefaultOn bool `mapstructure:"default_on"`
	Threshold int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// HXTOGGLE_. An explicit path wins over HXTOGGLE_CONFIG, which wins over
// $HOME/.config/hxtoggle/config.toml.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.key", "")
	v.SetDefault("toggle.default_on", false)
	v.SetDefault("toggle.threshold", 4)
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("HXTOGGLE_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "hxtoggle"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HXTOGGLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// an explicitly named file must exist; the default location may not
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values Load cannot default.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Toggle.Threshold < 1 {
		return fmt.Errorf("toggle.threshold must be at least 1, got %d", c.Toggle.Threshold)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

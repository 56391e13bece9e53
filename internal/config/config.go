// Package config loads tasktree settings from defaults, the global and local
// JSON config files and TASKTREE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
	"github.com/ariel-frischer/tasktree/internal/theme"
)

// EnvPrefix is the prefix for environment overrides
const EnvPrefix = "TASKTREE_"

// Configuration represents the tasktree configuration
type Configuration struct {
	IntervalMS int                    `koanf:"interval_ms" yaml:"interval_ms" validate:"min=10,max=5000"`
	BarWidth   int                    `koanf:"bar_width" yaml:"bar_width" validate:"min=1,max=200"`
	ASCII      bool                   `koanf:"ascii" yaml:"ascii"`       // Force ASCII glyphs and spinner frames
	NoColor    bool                   `koanf:"no_color" yaml:"no_color"` // Disable ANSI colors
	Silent     bool                   `koanf:"silent" yaml:"silent"`     // Never redraw or exit the process
	LogLevel   string                 `koanf:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFile    string                 `koanf:"log_file" yaml:"log_file,omitempty"`
	Theme      map[string]interface{} `koanf:"theme" yaml:"theme,omitempty"`
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if globalPath, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, apperrors.WrapWithMessage(err, apperrors.Configuration, "failed to load global config",
					"Fix or remove "+globalPath)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, apperrors.WrapWithMessage(err, apperrors.Configuration, "failed to load local config",
					"Fix or remove "+localConfigPath)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, apperrors.WrapWithMessage(err, apperrors.Configuration, "failed to unmarshal config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, apperrors.WrapWithMessage(err, apperrors.Configuration, "config validation failed",
			"interval_ms must be 10-5000, bar_width 1-200, log_level one of debug, info, warn, error")
	}

	if _, err := cfg.Overrides(); err != nil {
		return nil, err
	}

	cfg.LogFile = expandHomePath(cfg.LogFile)

	return &cfg, nil
}

// Overrides parses the theme section
func (c *Configuration) Overrides() (theme.Overrides, error) {
	return theme.ParseOverrides(c.Theme)
}

// Interval returns the redraw period
func (c *Configuration) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// GlobalConfigPath returns ~/.tasktree/config.json
func GlobalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tasktree", "config.json"), nil
}

// envTransform converts environment variable names to config keys
// Example: TASKTREE_BAR_WIDTH -> bar_width
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/stardustlabs/stardust/internal/domain"
)

// ConfigFileName is the name of the configuration file inside the config
// directory.
const ConfigFileName = "config.toml"

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // Path to the config directory (e.g., ~/.config/stardust)
}

// NewLoader creates a Loader reading from the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// defaultConfigDir returns the default config directory following the XDG
// convention.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stardust")
}

// Load returns the configuration, falling back to defaults when the file
// does not exist. Fields left unset in the file keep their default value.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.confDir == "" {
		return base, nil
	}

	data, err := os.ReadFile(filepath.Join(l.confDir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, err
	}

	var file domain.Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if file.DataDir != "" {
		base.DataDir = file.DataDir
	}
	if file.LogLevel != "" {
		base.LogLevel = file.LogLevel
	}
	if file.NotificationMS > 0 {
		base.NotificationMS = file.NotificationMS
	}

	return base, nil
}

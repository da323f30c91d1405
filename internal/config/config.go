// Package config loads the optional sparklectl configuration via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glowapp/sparklectl/internal/sparkle"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix scopes environment overrides, e.g. SPARKLECTL_VERSION.
	EnvPrefix = "SPARKLECTL"
	// DefaultConfigDir is the directory under ~/.config holding the file.
	DefaultConfigDir = "sparklectl"
	// DefaultConfigName is the config file basename without extension.
	DefaultConfigName = "config"
)

// Config holds the tunable parts of the managed dependency. The reserved
// identifiers are deliberately not configurable: changing them would orphan
// entries written by earlier runs.
type Config struct {
	Repository string `mapstructure:"repository"`
	Version    string `mapstructure:"version"`
}

// InitConfig wires viper to the config file (explicit path or the default
// search location) and the environment. A missing default file is fine; an
// unreadable explicit file is not.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}
		viper.AddConfigPath(filepath.Join(home, ".config", DefaultConfigDir))
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("repository", sparkle.DefaultRepositoryURL)
	viper.SetDefault("version", sparkle.DefaultVersion)

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// GetConfig unmarshals and validates the effective configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Dependency().Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Dependency builds the managed dependency from this configuration.
func (c *Config) Dependency() sparkle.Dependency {
	return sparkle.New(c.Repository, c.Version)
}

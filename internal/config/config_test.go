package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glowapp/sparklectl/internal/sparkle"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "SPARKLECTL", EnvPrefix)
	assert.Equal(t, "sparklectl", DefaultConfigDir)
	assert.Equal(t, "config", DefaultConfigName)
}

func TestGetConfigUsesDefaults(t *testing.T) {
	viper.Reset()
	require.NoError(t, InitConfig(""))

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, sparkle.DefaultRepositoryURL, cfg.Repository)
	assert.Equal(t, sparkle.DefaultVersion, cfg.Version)
}

func TestInitConfigReadsExplicitFile(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 2.9.0\n"), 0644))

	require.NoError(t, InitConfig(path))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "2.9.0", cfg.Version)
	assert.Equal(t, sparkle.DefaultRepositoryURL, cfg.Repository)
}

func TestInitConfigMissingExplicitFileFails(t *testing.T) {
	viper.Reset()

	err := InitConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetConfigEnvironmentOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("SPARKLECTL_VERSION", "3.1.0")
	require.NoError(t, InitConfig(""))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", cfg.Version)
}

func TestGetConfigRejectsInvalidVersion(t *testing.T) {
	viper.Reset()
	require.NoError(t, InitConfig(""))
	viper.Set("version", "not-a-version")

	_, err := GetConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestGetConfigRejectsEmptyRepository(t *testing.T) {
	viper.Reset()
	require.NoError(t, InitConfig(""))
	viper.Set("repository", "")

	_, err := GetConfig()
	assert.Error(t, err)
}

func TestDependency(t *testing.T) {
	cfg := &Config{Repository: "https://example.com/Sparkle", Version: "2.9.0"}
	dep := cfg.Dependency()

	assert.Equal(t, "Sparkle", dep.Name)
	assert.Equal(t, "https://example.com/Sparkle", dep.RepositoryURL)
	assert.Equal(t, "2.9.0", dep.Version)
}

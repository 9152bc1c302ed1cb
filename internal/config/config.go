package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "SUBCMD_"

// Config represents the subcmd host settings
type Config struct {
	DataFile  string `env:"DATA_FILE"`
	Quiet     bool   `env:"QUIET"`
	NoColor   bool   `env:"NO_COLOR"`
	Ephemeral bool   `env:"EPHEMERAL"`
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{}
}

// Load reads settings from the process environment
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads settings from environ instead of the process environment
// when environ is not nil
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := Defaults()
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// DataPath returns the user data file, or "" when running ephemeral
func (c *Config) DataPath() (string, error) {
	if c.Ephemeral {
		return "", nil
	}
	if c.DataFile != "" {
		return c.DataFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return DefaultDataPath(home), nil
}

// DefaultDataPath returns the data file location under home
func DefaultDataPath(home string) string {
	return filepath.Join(home, ".subcmd", "data.properties")
}

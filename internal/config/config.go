// Package config resolves the Snipe-IT connection settings. Environment
// variables win over the optional YAML config file; missing credentials do
// not prevent startup — every collaborator call fails until they are set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the process configuration.
type Config struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// Path returns the config file location, respecting SNIPEIT_MCP_CONFIG.
func Path() string {
	if p := os.Getenv("SNIPEIT_MCP_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".snipeit-mcp", "config.yaml")
	}
	return filepath.Join(home, ".snipeit-mcp", "config.yaml")
}

// Load reads the config file when present and overlays the SNIPEIT_URL and
// SNIPEIT_TOKEN environment variables. A missing file is not an error.
func Load() (Config, error) {
	var cfg Config

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", Path(), err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("read %s: %w", Path(), err)
	}

	if v := os.Getenv("SNIPEIT_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("SNIPEIT_TOKEN"); v != "" {
		cfg.Token = v
	}
	return cfg, nil
}

// Configured reports whether both connection settings are present.
func (c Config) Configured() bool {
	return c.URL != "" && c.Token != ""
}

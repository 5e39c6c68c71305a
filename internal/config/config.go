package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds client configuration. Values are resolved in order: defaults,
// then an optional config.yaml in the data directory, then environment
// variables (a .env file in the working directory is loaded first, if
// present). Command-line flags override all of these at the CLI layer.
type Config struct {
	ServerURL string `yaml:"server_url"`
	DataDir   string `yaml:"data_dir"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL: "http://146.190.102.54:9403",
		DataDir:   defaultDataDir(),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load resolves the effective configuration.
func Load() (Config, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Default()

	// The data dir decides where config.yaml lives, so resolve it first.
	if v := os.Getenv("CINEVO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if err := cfg.loadFile(filepath.Join(cfg.DataDir, "config.yaml")); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("CINEVO_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("CINEVO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CINEVO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

// DBPath returns the path of the local state database.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "cinevo.db")
}

// loadFile overlays values from a YAML config file. A missing file is fine;
// a malformed one is an error the user should hear about.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// defaultDataDir returns ~/.cinevo, falling back to the working directory
// when the home directory cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cinevo"
	}
	return filepath.Join(home, ".cinevo")
}

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// Environment overrides
const (
	EnvHome   = "IPPO_HOME"    // Directory holding config.json and the default database
	EnvDBPath = "IPPO_DB_PATH" // Database file, takes precedence over db_path
)

const (
	fileName      = "config.json"
	defaultDBName = "ippo.db"
)

// Config represents the ippo configuration file.
// The file may contain comments and trailing commas.
type Config struct {
	DBPath   string `json:"db_path,omitempty"`   // Defaults to <dir>/ippo.db
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error
}

// Dir returns the ippo configuration directory.
// Resolution order: $IPPO_HOME, then ~/.ippo.
func Dir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ippo"), nil
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, fileName)
}

// LoadConfig reads config.json from dir.
// A missing file yields an empty config.
func LoadConfig(dir string) (*Config, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to dir, replacing it atomically.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(Path(dir), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolveDBPath returns the database path for a config loaded from dir.
// Resolution order: $IPPO_DB_PATH, db_path (relative to dir), <dir>/ippo.db.
func (c *Config) ResolveDBPath(dir string) string {
	if p := os.Getenv(EnvDBPath); p != "" {
		return p
	}
	if c.DBPath == "" {
		return filepath.Join(dir, defaultDBName)
	}
	if filepath.IsAbs(c.DBPath) {
		return c.DBPath
	}
	return filepath.Join(dir, c.DBPath)
}

// Set assigns a config field by its JSON key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "db_path":
		c.DBPath = value
	case "log_level":
		c.LogLevel = value
	default:
		return fmt.Errorf("unknown config key %q (want db_path or log_level)", key)
	}
	return nil
}

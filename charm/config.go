// ABOUTME: Local settings for the charm backend, kept next to its data
// ABOUTME: The app config may override host and auto-sync for a single run

package charm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// DefaultHost is the self-hosted charm server.
	DefaultHost = "charm.2389.dev"

	// AppName names the charm KV database and the data directory.
	AppName = "commtrack"

	settingsFile = "charm.json"
)

// Config holds charm connection settings.
type Config struct {
	Host     string `json:"host,omitempty"`
	AutoSync bool   `json:"auto_sync"`

	path string
}

func DefaultConfig() *Config {
	return &Config{Host: DefaultHost, AutoSync: true}
}

// DefaultConfigPath is where the settings file lives.
func DefaultConfigPath() string {
	return filepath.Join(xdg.DataHome, AppName, settingsFile)
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigPath())
}

// LoadConfigFrom reads the settings file at path. A missing file yields the
// defaults. A corrupt one is an error rather than a silent reset.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read charm config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse charm config %s: %w", path, err)
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	return cfg, nil
}

// Override applies per-run values. They are never written back.
func (c *Config) Override(host string, autoSync *bool) {
	if host != "" {
		c.Host = host
	}
	if autoSync != nil {
		c.AutoSync = *autoSync
	}
}

func (c *Config) save() error {
	if c.path == "" {
		c.path = DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("failed to create charm config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0600)
}

// SetAutoSync persists the auto-sync flag. Other fields are re-read from
// disk first so run overrides stay out of the file.
func (c *Config) SetAutoSync(enabled bool) error {
	path := c.path
	if path == "" {
		path = DefaultConfigPath()
	}
	onDisk, err := LoadConfigFrom(path)
	if err != nil {
		return err
	}
	onDisk.AutoSync = enabled
	if err := onDisk.save(); err != nil {
		return err
	}
	c.AutoSync = enabled
	return nil
}

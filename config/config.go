// ABOUTME: Application configuration loaded from JSON file, .env and environment
// ABOUTME: Selects the storage backend and logging settings
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendCharm  = "charm"
	BackendSQLite = "sqlite"

	// EnvPrefix prefixes every environment override, e.g. COMMTRACK_STORAGE_BACKEND.
	EnvPrefix = "COMMTRACK"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Charm   CharmConfig   `mapstructure:"charm"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// CharmConfig overrides the charm package's own config file when set.
type CharmConfig struct {
	Host     string `mapstructure:"host"`
	AutoSync *bool  `mapstructure:"auto_sync"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultPath is $XDG_CONFIG_HOME/commtrack/config.json.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "commtrack", "config.json")
}

// Load reads .env, then the config file at path (DefaultPath when empty,
// skipped when absent), then COMMTRACK_* environment variables.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// No defaults for these: unset means "defer to the charm config file".
	_ = v.BindEnv("charm.host")
	_ = v.BindEnv("charm.auto_sync")

	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendCharm)
	v.SetDefault("storage.sqlite_path", filepath.Join(xdg.DataHome, "commtrack", "commtrack.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendCharm, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", c.Storage.Backend, BackendCharm, BackendSQLite)
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path is required for the sqlite backend")
	}
	return nil
}

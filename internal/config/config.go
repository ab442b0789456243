// Package config provides configuration loading for the vet-system
// client tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the client tools.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
}

// APIConfig holds backend endpoint configuration.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig holds session persistence configuration.
type SessionConfig struct {
	// Dir is the directory the two session keys are stored under.
	// Empty means "<user config dir>/vet-system".
	Dir      string `mapstructure:"dir"`
	TokenKey string `mapstructure:"token_key"`
	UserKey  string `mapstructure:"user_key"`
}

// Load reads configuration from files and environment variables.
//
// Lookup order: explicit config file in the working directory or
// ~/.config/vet-system, then VET_-prefixed environment variables
// (VET_API_BASE_URL and friends), then defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "vet-system"))
	}

	v.SetEnvPrefix("VET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Session.Dir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving session directory: %w", err)
		}
		cfg.Session.Dir = filepath.Join(dir, "vet-system")
	}

	return &cfg, nil
}

// setDefaults configures default values for all settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.timeout", "30s")

	v.SetDefault("session.dir", "")
	v.SetDefault("session.token_key", "vet_system_token")
	v.SetDefault("session.user_key", "vet_system_user")
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	TokenFile string `mapstructure:"token_file"`
}

type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".nextlevel")
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath(defaultDir())
	v.AddConfigPath("/etc/nextlevel/")

	v.SetEnvPrefix("NEXTLEVEL")
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "http://localhost:3000/api/v1")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("session.token_file", filepath.Join(defaultDir(), "token"))
	v.SetDefault("ui.theme", "dark")

	return v
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is fine; the defaults describe a local API server.
func LoadConfig() (*Config, error) {
	v := newViper()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// SaveTheme persists the UI theme preference, the one non-credential piece
// of local state the client keeps.
func SaveTheme(theme string) error {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.Set("ui.theme", theme)

	if err := os.MkdirAll(defaultDir(), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := v.WriteConfigAs(filepath.Join(defaultDir(), "config.yaml")); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// cliConfig is the terminal client's configuration.
type cliConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	SessionFile string        `mapstructure:"session_file"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// loadConfig reads path, or ~/.sosio.yaml when path is empty, then applies
// SOSIO_* environment overrides. A missing default file is not an error.
func loadConfig(path string) (*cliConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	v := viper.New()
	v.SetDefault("api_url", "http://localhost:5000")
	v.SetDefault("session_file", filepath.Join(home, ".sosio", "session.json"))
	v.SetDefault("timeout", 10*time.Second)

	if path == "" {
		v.SetConfigName(".sosio")
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
	} else {
		v.SetConfigFile(path)
	}

	// environment overrides, e.g. SOSIO_API_URL=https://api.example.com
	v.SetEnvPrefix("SOSIO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c cliConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

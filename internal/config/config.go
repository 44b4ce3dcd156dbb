package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	API APIConfig `mapstructure:"api"`
}

// APIConfig holds catalog API configuration
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Timeout is the per-request timeout in seconds; 0 means no timeout.
	Timeout int `mapstructure:"timeout"`
}

// Load loads configuration from YAML file with environment variable overrides.
// A missing config.yaml is not an error, the defaults are enough to run.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout", 0)
}

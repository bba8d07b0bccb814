// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or
// environment variables.
type Config struct {
	DataDir  string `mapstructure:"QUILL_DATA_DIR"`
	LogLevel string `mapstructure:"QUILL_LOG_LEVEL"`
}

// Load reads configuration from an optional quill.yml in the working
// directory, with environment variables taking precedence and sensible
// defaults below both.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("quill")
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; environment variables and defaults apply.
	}

	v.SetDefault("QUILL_DATA_DIR", "data/quill")
	v.SetDefault("QUILL_LOG_LEVEL", "info")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

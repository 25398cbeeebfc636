package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "GEDPREP"

// Default values applied before any file or environment source.
var defaults = map[string]any{
	"server.port":                8080,
	"server.log_level":           "info",
	"server.shutdown_timeout":    "15s",
	"llm.gemini_api_key":         "",
	"llm.model_name":             "gemini-2.0-flash",
	"llm.base_url":               "",
	"llm.request_timeout":        "30s",
	"llm.requests_per_minute":    60,
	"llm.offline":                false,
	"quiz.max_attempts":          5,
	"quiz.retry_delay":           "0s",
	"quiz.use_fallback_bank":     false,
	"flashcards.deck_size":       100,
	"flashcards.batch_size":      5,
	"flashcards.shared_used_set": false,
	"sessions.ttl":               "2h",
	"sessions.reap_interval":     "1m",
}

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first when present; it never
// overrides variables already set in the process environment. Environment
// variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

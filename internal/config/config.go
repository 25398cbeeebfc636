package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm" validate:"required"`
	Quiz       QuizConfig       `mapstructure:"quiz" validate:"required"`
	Flashcards FlashcardsConfig `mapstructure:"flashcards" validate:"required"`
	Sessions   SessionsConfig   `mapstructure:"sessions" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey may only be empty when Offline is set.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_unless=Offline true"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
	// BaseURL overrides the Gemini endpoint; empty means the SDK default.
	BaseURL           string        `mapstructure:"base_url" validate:"omitempty,url"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute" validate:"gt=0"`
	// Offline disables the generator entirely; every request is served from
	// the fallback bank.
	Offline bool `mapstructure:"offline"`
}

// QuizConfig controls the question supply for practice tests.
type QuizConfig struct {
	MaxAttempts     int           `mapstructure:"max_attempts" validate:"gte=1,lte=20"`
	RetryDelay      time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	UseFallbackBank bool          `mapstructure:"use_fallback_bank"`
}

// FlashcardsConfig controls flashcard deck sessions.
type FlashcardsConfig struct {
	DeckSize      int  `mapstructure:"deck_size" validate:"gt=0"`
	BatchSize     int  `mapstructure:"batch_size" validate:"gt=0,lte=50"`
	SharedUsedSet bool `mapstructure:"shared_used_set"`
}

// SessionsConfig controls the in-memory session registries.
type SessionsConfig struct {
	TTL          time.Duration `mapstructure:"ttl" validate:"gt=0"`
	ReapInterval time.Duration `mapstructure:"reap_interval" validate:"gt=0"`
}

package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm" validate:"required"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline" validate:"required"`
	AutoCycle AutoCycleConfig `mapstructure:"autocycle" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the Gemini integration settings.
type LLMConfig struct {
	GeminiAPIKey    string  `mapstructure:"gemini_api_key" validate:"required"`
	TextModel       string  `mapstructure:"text_model" validate:"required"`
	ImageModel      string  `mapstructure:"image_model" validate:"required"`
	TextTemperature float32 `mapstructure:"text_temperature" validate:"gte=0,lte=2"`
}

// PipelineConfig tunes the per-card image acquisition pipeline.
type PipelineConfig struct {
	// StaggerStep is multiplied by the card index before the first request.
	StaggerStep time.Duration `mapstructure:"stagger_step" validate:"gte=0"`

	// BackoffBase is the wait before the first quota retry.
	BackoffBase time.Duration `mapstructure:"backoff_base" validate:"gt=0"`

	// BackoffFactor multiplies the wait for every further retry.
	BackoffFactor float64 `mapstructure:"backoff_factor" validate:"gte=1"`

	// MaxRetries bounds quota retries; attempts = MaxRetries + 1.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// AutoCycleConfig contains the auto-cycle timing.
type AutoCycleConfig struct {
	CycleLength  time.Duration `mapstructure:"cycle_length" validate:"gt=0"`
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"gt=0"`
}

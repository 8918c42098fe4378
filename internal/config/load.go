package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "LUMINA"

// Default values applied before any file or environment source.
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultTextModel       = "gemini-3-flash-preview"
	DefaultImageModel      = "gemini-2.5-flash-image"
	DefaultTextTemperature = 0.85
	DefaultStaggerStep     = 1800 * time.Millisecond
	DefaultBackoffBase     = 2000 * time.Millisecond
	DefaultBackoffFactor   = 3.0
	DefaultMaxRetries      = 2
	DefaultCycleLength     = 20000 * time.Millisecond
	DefaultTickInterval    = 100 * time.Millisecond
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	setDefaults(v)

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

	// The API key has no default, so it must be bound explicitly. The bare
	// GEMINI_API_KEY and API_KEY names are accepted as fallbacks.
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags of a fully populated Config.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)

	v.SetDefault("llm.text_model", DefaultTextModel)
	v.SetDefault("llm.image_model", DefaultImageModel)
	v.SetDefault("llm.text_temperature", DefaultTextTemperature)

	v.SetDefault("pipeline.stagger_step", DefaultStaggerStep)
	v.SetDefault("pipeline.backoff_base", DefaultBackoffBase)
	v.SetDefault("pipeline.backoff_factor", DefaultBackoffFactor)
	v.SetDefault("pipeline.max_retries", DefaultMaxRetries)

	v.SetDefault("autocycle.cycle_length", DefaultCycleLength)
	v.SetDefault("autocycle.tick_interval", DefaultTickInterval)
}

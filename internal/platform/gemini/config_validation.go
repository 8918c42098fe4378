package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lumina-api/internal/config"
	"github.com/phrazzld/lumina-api/internal/generation"
)

// validateConfig checks that the API key and both model names are set.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key", "error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TextModel == "" {
		return fmt.Errorf("%w: text model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ImageModel == "" {
		return fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TextTemperature < 0 {
		logger.WarnContext(ctx, "Negative text temperature",
			"value", cfg.TextTemperature,
			"action", "passing through to the API")
	}

	return nil
}

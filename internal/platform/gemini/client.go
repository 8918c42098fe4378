package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lumina-api/internal/config"
	"github.com/phrazzld/lumina-api/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models the client calls.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Client implements generation.TextGenerator and generation.ImageGenerator
// against the Gemini API.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// models issues GenerateContent calls
	models contentGenerator
}

// Compile-time checks that Client satisfies both ports.
var (
	_ generation.TextGenerator  = (*Client)(nil)
	_ generation.ImageGenerator = (*Client)(nil)
)

// NewClient creates a Gemini-backed generator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client construction
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key and model names
//
// Returns:
//   - A properly initialized Client or an error if initialization fails
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newClient(logger, cfg, client.Models), nil
}

func newClient(logger *slog.Logger, cfg config.LLMConfig, models contentGenerator) *Client {
	return &Client{
		logger: logger.With("component", "gemini"),
		config: cfg,
		models: models,
	}
}

package greeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/generation"
)

// ErrTextGenerationFailed is returned when the text service call itself fails.
var ErrTextGenerationFailed = errors.New("text generation failed")

// FailureMessage is the user-facing description of ErrTextGenerationFailed.
const FailureMessage = "Neural synthesis interrupted. Check your connection."

// Client turns a parameter set into a greeting set.
type Client struct {
	logger    *slog.Logger
	generator generation.TextGenerator
}

// NewClient creates a greeting client on top of a text generator.
func NewClient(logger *slog.Logger, generator generation.TextGenerator) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("text generator cannot be nil")
	}
	return &Client{
		logger:    logger.With("component", "greeting_client"),
		generator: generator,
	}, nil
}

// Request issues a single text generation call for params. It never retries.
// A malformed or partial body is not an error: missing pieces fall back to an
// empty greeting list and domain.DefaultCategory.
func (c *Client) Request(ctx context.Context, params domain.GeneratorParams) (domain.GreetingResponse, error) {
	prompt, err := generation.GreetingPrompt(params)
	if err != nil {
		return domain.GreetingResponse{}, fmt.Errorf("%w: %v", ErrTextGenerationFailed, err)
	}

	body, err := c.generator.GenerateGreetingJSON(ctx, prompt)
	if err != nil {
		c.logger.ErrorContext(ctx, "Greeting request failed",
			"audience", params.Audience,
			"tone", params.Tone,
			"error", err)
		return domain.GreetingResponse{}, fmt.Errorf("%w: %w", ErrTextGenerationFailed, err)
	}

	resp, parseErr := Parse(body)
	if parseErr != nil {
		c.logger.WarnContext(ctx, "Malformed greeting response, using fallback",
			"body_length", len(body),
			"error", parseErr)
	}

	c.logger.InfoContext(ctx, "Greeting set received",
		"category", resp.Category,
		"greeting_count", len(resp.Greetings))
	return resp, nil
}

// rawResponse mirrors the response schema with every field optional.
type rawResponse struct {
	Category  *string               `json:"category"`
	Greetings []domain.GreetingItem `json:"greetings"`
}

// Parse normalizes a response body. An empty body is read as "{}". On
// malformed JSON it returns the fallback response together with the decode
// error so callers can log it.
func Parse(body string) (domain.GreetingResponse, error) {
	fallback := domain.GreetingResponse{
		Category:  domain.DefaultCategory,
		Greetings: []domain.GreetingItem{},
	}

	if strings.TrimSpace(body) == "" {
		body = "{}"
	}

	var raw rawResponse
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return fallback, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	resp := fallback
	if raw.Category != nil && strings.TrimSpace(*raw.Category) != "" {
		resp.Category = *raw.Category
	}
	if raw.Greetings != nil {
		resp.Greetings = raw.Greetings
	}
	return resp, nil
}

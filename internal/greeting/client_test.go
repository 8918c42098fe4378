package greeting_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/generation"
	"github.com/phrazzld/lumina-api/internal/greeting"
	"github.com/phrazzld/lumina-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	_, err := greeting.NewClient(nil, &mocks.MockTextGenerator{})
	assert.Error(t, err)

	_, err = greeting.NewClient(setupTestLogger(), nil)
	assert.Error(t, err)
}

func TestRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	params := domain.DefaultParams()

	t.Run("parses a well-formed set", func(t *testing.T) {
		gen := &mocks.MockTextGenerator{
			GenerateGreetingJSONFn: func(ctx context.Context, prompt string) (string, error) {
				return `{"category":"New Dawn","greetings":[{"text":"Hello 2026","context":"Heartfelt SMS"}]}`, nil
			},
		}
		client, err := greeting.NewClient(setupTestLogger(), gen)
		require.NoError(t, err)

		resp, err := client.Request(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "New Dawn", resp.Category)
		require.Len(t, resp.Greetings, 1)
		assert.Equal(t, "Hello 2026", resp.Greetings[0].Text)
		assert.Equal(t, "Heartfelt SMS", resp.Greetings[0].Context)

		require.Equal(t, 1, gen.CallCount())
		assert.Contains(t, gen.Prompts()[0], "Target Audience: Personal & Emotional")
		assert.Contains(t, gen.Prompts()[0], "Themes: Growth & Transformation, Hope & Resilience")
	})

	t.Run("malformed body falls back", func(t *testing.T) {
		gen := &mocks.MockTextGenerator{
			GenerateGreetingJSONFn: func(ctx context.Context, prompt string) (string, error) {
				return `{"category": "trunc`, nil
			},
		}
		client, err := greeting.NewClient(setupTestLogger(), gen)
		require.NoError(t, err)

		resp, err := client.Request(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCategory, resp.Category)
		assert.Empty(t, resp.Greetings)
		assert.NotNil(t, resp.Greetings)
	})

	t.Run("transport failure is not retried", func(t *testing.T) {
		gen := &mocks.MockTextGenerator{
			GenerateGreetingJSONFn: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		client, err := greeting.NewClient(setupTestLogger(), gen)
		require.NoError(t, err)

		_, err = client.Request(ctx, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, greeting.ErrTextGenerationFailed)
		assert.Equal(t, 1, gen.CallCount())
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		wantCategory string
		wantCount    int
		wantErr      bool
	}{
		{"empty body", "", domain.DefaultCategory, 0, false},
		{"empty object", "{}", domain.DefaultCategory, 0, false},
		{"null", "null", domain.DefaultCategory, 0, false},
		{"blank category", `{"category":"  ","greetings":[{"text":"a","context":"b"}]}`, domain.DefaultCategory, 1, false},
		{"missing greetings", `{"category":"Solstice"}`, "Solstice", 0, false},
		{"five greetings", `{"category":"C","greetings":[{"text":"1"},{"text":"2"},{"text":"3"},{"text":"4"},{"text":"5"}]}`, "C", 5, false},
		{"not json", "Sorry, I cannot help.", domain.DefaultCategory, 0, true},
		{"wrong shape", `["a","b"]`, domain.DefaultCategory, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := greeting.Parse(tt.body)
			if tt.wantErr {
				assert.ErrorIs(t, err, generation.ErrInvalidResponse)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCategory, resp.Category)
			assert.Len(t, resp.Greetings, tt.wantCount)
			assert.NotNil(t, resp.Greetings)
		})
	}
}

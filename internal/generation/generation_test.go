package generation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyImageError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want domain.ErrorKind
	}{
		{"nil", nil, domain.ErrorKindNone},
		{"wrapped quota sentinel", fmt.Errorf("%w: RESOURCE_EXHAUSTED", generation.ErrQuotaExceeded), domain.ErrorKindQuotaExceeded},
		{"429 in message", errors.New("Error 429, Message: too many requests"), domain.ErrorKindQuotaExceeded},
		{"no image data", fmt.Errorf("%w: 0 parts", generation.ErrNoImageData), domain.ErrorKindNetworkOrOther},
		{"network", errors.New("dial tcp: connection refused"), domain.ErrorKindNetworkOrOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generation.ClassifyImageError(tt.err))
		})
	}
}

func TestGreetingPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := generation.GreetingPrompt(domain.GeneratorParams{
		Audience: domain.AudienceProfessional,
		Tone:     domain.ToneMinimalist,
		Themes:   []string{"Inner Peace", "Global Harmony"},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "5 unique New Year greetings")
	assert.Contains(t, prompt, "Target Audience: Professional")
	assert.Contains(t, prompt, "Desired Tone: Minimalist & Elegant")
	assert.Contains(t, prompt, "Themes: Inner Peace, Global Harmony")
	assert.NotContains(t, prompt, "&amp;", "prompts must not be HTML-escaped")
}

func TestImagePrompt(t *testing.T) {
	t.Parallel()

	prompt, err := generation.ImagePrompt([]string{"Hope & Resilience", "Creative Vision"}, string(domain.ToneJoyful))
	require.NoError(t, err)

	assert.Contains(t, prompt, "Themes: Hope & Resilience, Creative Vision.")
	assert.Contains(t, prompt, "Style: Joyful & Celebratory.")
	assert.Contains(t, prompt, "NO TEXT IN THE IMAGE.")
}

func TestImageDataURI(t *testing.T) {
	t.Parallel()

	img := &generation.Image{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	assert.Equal(t, "data:image/png;base64,iVBORw==", img.DataURI())
}

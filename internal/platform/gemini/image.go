package gemini

import (
	"context"
	"fmt"

	"github.com/phrazzld/lumina-api/internal/generation"
	"google.golang.org/genai"
)

// squareAspectRatio is the only aspect ratio the studio requests.
const squareAspectRatio = "1:1"

const defaultImageMIMEType = "image/png"

// GenerateImage asks the image model for one square illustration and
// returns the first inline image of the first candidate.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*generation.Image, error) {
	c.logger.DebugContext(ctx, "Making Gemini image call",
		"model", c.config.ImageModel,
		"prompt_length", len(prompt))

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := c.models.GenerateContent(ctx, c.config.ImageModel, contents, &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: squareAspectRatio},
	})
	if err != nil {
		return nil, translateError(err)
	}

	img := firstInlineImage(resp)
	if img == nil {
		return nil, fmt.Errorf("%w: response had no inline image", generation.ErrNoImageData)
	}
	return img, nil
}

func firstInlineImage(resp *genai.GenerateContentResponse) *generation.Image {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mimeType := part.InlineData.MIMEType
		if mimeType == "" {
			mimeType = defaultImageMIMEType
		}
		return &generation.Image{
			MIMEType: mimeType,
			Data:     part.InlineData.Data,
		}
	}
	return nil
}

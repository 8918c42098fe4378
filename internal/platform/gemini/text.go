package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// emptyObject is returned when the model answers with no text at all.
const emptyObject = "{}"

// GenerateGreetingJSON asks the text model for a greeting set in JSON form.
// The returned string is the raw response text; an empty response yields "{}".
func (c *Client) GenerateGreetingJSON(ctx context.Context, prompt string) (string, error) {
	c.logger.InfoContext(ctx, "Making Gemini API call",
		"model", c.config.TextModel,
		"prompt_length", len(prompt))

	resp, err := c.models.GenerateContent(ctx, c.config.TextModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(c.config.TextTemperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   greetingSchema(),
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "Gemini text call failed",
			"model", c.config.TextModel,
			"error", err)
		return "", translateError(err)
	}

	text := responseText(resp)
	if text == "" {
		c.logger.WarnContext(ctx, "Gemini text call returned no text", "model", c.config.TextModel)
		return emptyObject, nil
	}

	c.logger.InfoContext(ctx, "Gemini API call successful",
		"model", c.config.TextModel,
		"response_length", len(text))
	return text, nil
}

// responseText concatenates the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

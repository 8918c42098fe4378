package gemini

import "google.golang.org/genai"

// greetingSchema describes the JSON object the text model must return:
// a category title plus a list of greetings, each with text and context.
func greetingSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": {Type: genai.TypeString},
			"greetings": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"text":    {Type: genai.TypeString},
						"context": {Type: genai.TypeString},
					},
					Required: []string{"text", "context"},
				},
			},
		},
		Required: []string{"category", "greetings"},
	}
}

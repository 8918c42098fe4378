package generation

import (
	"context"
	"encoding/base64"
)

// TextGenerator produces the raw JSON body of a greeting set.
// This interface serves as a boundary between the studio core and
// external AI/LLM services, following the hexagonal architecture pattern.
type TextGenerator interface {
	// GenerateGreetingJSON sends the prompt in a single non-streaming call that
	// requests a JSON object matching the greeting schema. It returns the
	// response text as-is; parsing and fallbacks belong to the caller.
	GenerateGreetingJSON(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces one illustration for a prompt.
type ImageGenerator interface {
	// GenerateImage returns the first inline image of the response, or an
	// error wrapping ErrNoImageData when the response holds none.
	GenerateImage(ctx context.Context, prompt string) (*Image, error)
}

// Image is a generated inline image payload.
type Image struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the image as data:<mime>;base64,<payload>.
func (i *Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

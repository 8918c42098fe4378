package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when a generation call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrQuotaExceeded is returned when the service reports resource exhaustion or HTTP 429
	ErrQuotaExceeded = errors.New("generation quota exceeded")

	// ErrNoImageData is returned when a successful image response carries no inline image
	ErrNoImageData = errors.New("neural art engine returned no data")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when a prompt renders to an empty string
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/lumina-api/internal/generation"
	"google.golang.org/genai"
)

const statusResourceExhausted = "RESOURCE_EXHAUSTED"

// translateError wraps quota API errors in generation.ErrQuotaExceeded and
// every other failure in generation.ErrGenerationFailed.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if isQuotaAPIError(err) {
		return fmt.Errorf("%w: %v", generation.ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
}

func isQuotaAPIError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == statusResourceExhausted
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == statusResourceExhausted
	}
	return false
}

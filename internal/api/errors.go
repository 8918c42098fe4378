package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/lumina-api/internal/card"
	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/gallery"
	"github.com/phrazzld/lumina-api/internal/generation"
	"github.com/phrazzld/lumina-api/internal/greeting"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, gallery.ErrCardNotFound):
		return http.StatusNotFound

	// Card phase conflicts
	case errors.Is(err, card.ErrNotFailed),
		errors.Is(err, card.ErrNotReady),
		errors.Is(err, card.ErrTornDown):
		return http.StatusConflict

	// Upstream failures. Text failures are checked first because a quota
	// error on the greeting request is still a text failure.
	case errors.Is(err, greeting.ErrTextGenerationFailed):
		return http.StatusBadGateway
	case errors.Is(err, generation.ErrQuotaExceeded):
		return http.StatusTooManyRequests

	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAudience):
		return "Invalid audience"
	case errors.Is(err, domain.ErrInvalidTone):
		return "Invalid tone"
	case errors.Is(err, domain.ErrInvalidThemes):
		return fmt.Sprintf("Themes must contain 1 to %d non-empty entries", domain.MaxThemes)
	case errors.Is(err, domain.ErrValidation):
		return "Invalid parameters"

	case errors.Is(err, gallery.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, card.ErrNotFailed):
		return "Only failed cards can be retried"
	case errors.Is(err, card.ErrNotReady):
		return "Card image is not ready"
	case errors.Is(err, card.ErrTornDown):
		return "Card was replaced by a newer set"

	case errors.Is(err, greeting.ErrTextGenerationFailed):
		return greeting.FailureMessage
	case errors.Is(err, generation.ErrQuotaExceeded):
		return domain.ErrorKindQuotaExceeded.Label()

	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return "Request cancelled"

	default:
		// Render failures carry no sentinel of their own.
		if strings.Contains(err.Error(), "failed to render") {
			return "Failed to render card"
		}
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'ParamsRequest.Tone' Error:Field validation for 'Tone' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			// Further split to get just the field validation part
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				// Create a cleaner error message
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAudience is returned for an audience outside the enum.
	ErrInvalidAudience = errors.New("invalid audience")

	// ErrInvalidTone is returned for a tone outside the enum.
	ErrInvalidTone = errors.New("invalid tone")

	// ErrInvalidThemes is returned when the theme list is empty, too long, or has blank entries.
	ErrInvalidThemes = errors.New("invalid themes")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)

package generation

import (
	"errors"
	"strings"

	"github.com/phrazzld/lumina-api/internal/domain"
)

// IsQuotaError reports whether err signals a rate-limit or resource
// exhaustion condition: either it wraps ErrQuotaExceeded (adapters wrap
// explicit RESOURCE_EXHAUSTED statuses that way) or its text carries a 429.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrQuotaExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "429")
}

// ClassifyImageError maps a failed image request to the kind shown on the card.
func ClassifyImageError(err error) domain.ErrorKind {
	if err == nil {
		return domain.ErrorKindNone
	}
	if IsQuotaError(err) {
		return domain.ErrorKindQuotaExceeded
	}
	return domain.ErrorKindNetworkOrOther
}

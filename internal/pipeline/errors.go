package pipeline

import (
	"fmt"

	"github.com/phrazzld/lumina-api/internal/domain"
)

// AcquisitionError is the terminal failure of an acquisition.
type AcquisitionError struct {
	// Kind is the classification shown on the card.
	Kind domain.ErrorKind

	// Attempts is how many image requests were issued.
	Attempts int

	// Err is the error of the last attempt.
	Err error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("image acquisition failed (%s) after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

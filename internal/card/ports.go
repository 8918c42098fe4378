package card

import (
	"context"
	"errors"

	"github.com/phrazzld/lumina-api/internal/pipeline"
)

// Errors returned by Controller operations.
var (
	// ErrNotFailed is returned when Retry is called on a card that is not Failed.
	ErrNotFailed = errors.New("card is not in a failed state")

	// ErrNotReady is returned when Download is called before the image is ready.
	ErrNotReady = errors.New("card image is not ready")

	// ErrTornDown is returned by operations on a card that was removed.
	ErrTornDown = errors.New("card has been torn down")
)

// Acquirer fetches a card image. *pipeline.Pipeline satisfies it.
type Acquirer interface {
	Acquire(ctx context.Context, req pipeline.Request) (string, error)
}

// Clipboard receives copied greeting text.
type Clipboard interface {
	WriteText(text string) error
}

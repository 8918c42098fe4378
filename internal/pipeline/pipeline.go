package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/lumina-api/internal/generation"
	"github.com/sethvargo/go-retry"
)

// Request describes one card's acquisition.
type Request struct {
	// Text is the cleaned greeting text. It is logged but not sent to the
	// image model.
	Text string

	Themes []string
	Tone   string

	// Index is the card's position in its set and scales the stagger.
	Index int

	// OnRetry, when set, is called with the new retry count right before
	// each backoff wait.
	OnRetry func(retryCount int)
}

// Pipeline runs acquisitions against an image generator.
type Pipeline struct {
	logger    *slog.Logger
	generator generation.ImageGenerator
	policy    Policy
}

// New creates a pipeline.
func New(logger *slog.Logger, generator generation.ImageGenerator, policy Policy) (*Pipeline, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("image generator cannot be nil")
	}
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	return &Pipeline{
		logger:    logger.With("component", "image_pipeline"),
		generator: generator,
		policy:    policy,
	}, nil
}

// Policy returns the timing policy the pipeline runs with.
func (p *Pipeline) Policy() Policy {
	return p.policy
}

// Acquire runs the full acquisition and returns the image as a data URI.
//
// On terminal failure it returns an *AcquisitionError. If ctx is cancelled
// during a wait it returns ctx.Err() without issuing further requests.
func (p *Pipeline) Acquire(ctx context.Context, req Request) (string, error) {
	logger := p.logger.With("card_index", req.Index)

	prompt, err := generation.ImagePrompt(req.Themes, req.Tone)
	if err != nil {
		return "", &AcquisitionError{Kind: generation.ClassifyImageError(err), Err: err}
	}

	if err := wait(ctx, p.policy.Stagger(req.Index)); err != nil {
		logger.DebugContext(ctx, "Acquisition abandoned during stagger", "error", err)
		return "", err
	}

	var (
		attempts   int
		retryCount int
		uri        string
		lastErr    error
	)

	backoff := retry.WithMaxRetries(uint64(p.policy.MaxRetries), retry.BackoffFunc(func() (time.Duration, bool) {
		delay := p.policy.Backoff(retryCount)
		retryCount++
		logger.InfoContext(ctx, "Quota exceeded, backing off",
			"retry_count", retryCount,
			"delay_ms", delay.Milliseconds())
		if req.OnRetry != nil {
			req.OnRetry(retryCount)
		}
		return delay, false
	}))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		logger.InfoContext(ctx, "Requesting card image",
			"attempt", attempts,
			"max_attempts", p.policy.MaxRetries+1)

		img, err := p.generator.GenerateImage(ctx, prompt)
		if err != nil {
			lastErr = err
			logger.WarnContext(ctx, "Card image request failed",
				"attempt", attempts,
				"error", err)
			if generation.IsQuotaError(err) {
				return retry.RetryableError(err)
			}
			return err
		}

		uri = img.DataURI()
		return nil
	})

	if err == nil {
		logger.InfoContext(ctx, "Card image ready", "attempts", attempts)
		return uri, nil
	}

	// A cancelled acquisition is never classified.
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.DebugContext(ctx, "Acquisition abandoned", "attempts", attempts, "error", ctxErr)
		return "", ctxErr
	}

	if lastErr == nil {
		lastErr = err
	}
	acqErr := &AcquisitionError{
		Kind:     generation.ClassifyImageError(lastErr),
		Attempts: attempts,
		Err:      lastErr,
	}
	logger.ErrorContext(ctx, "Card image acquisition failed",
		"attempts", attempts,
		"error_kind", acqErr.Kind,
		"error", lastErr)
	return "", acqErr
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

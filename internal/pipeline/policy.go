package pipeline

import (
	"math"
	"time"

	"github.com/phrazzld/lumina-api/internal/config"
)

// Policy holds the timing tunables of an acquisition.
type Policy struct {
	// StaggerStep is multiplied by the card index to get the initial wait.
	StaggerStep time.Duration

	// BackoffBase is the wait before the first quota retry.
	BackoffBase time.Duration

	// BackoffFactor multiplies the wait for every further retry.
	BackoffFactor float64

	// MaxRetries bounds quota retries; attempts = MaxRetries + 1.
	MaxRetries int
}

// DefaultPolicy returns the production schedule: 1800ms stagger steps and
// quota retries after 2000ms and 6000ms.
func DefaultPolicy() Policy {
	return Policy{
		StaggerStep:   config.DefaultStaggerStep,
		BackoffBase:   config.DefaultBackoffBase,
		BackoffFactor: config.DefaultBackoffFactor,
		MaxRetries:    config.DefaultMaxRetries,
	}
}

// PolicyFromConfig builds a policy from the pipeline configuration section.
func PolicyFromConfig(cfg config.PipelineConfig) Policy {
	return Policy{
		StaggerStep:   cfg.StaggerStep,
		BackoffBase:   cfg.BackoffBase,
		BackoffFactor: cfg.BackoffFactor,
		MaxRetries:    cfg.MaxRetries,
	}
}

// Stagger is the wait before the first request of the card at index.
func (p Policy) Stagger(index int) time.Duration {
	if index <= 0 {
		return 0
	}
	return time.Duration(index) * p.StaggerStep
}

// Backoff is the wait before the retry made at retryCount (0-based):
// BackoffBase × BackoffFactor^retryCount.
func (p Policy) Backoff(retryCount int) time.Duration {
	return time.Duration(float64(p.BackoffBase) * math.Pow(p.BackoffFactor, float64(retryCount)))
}

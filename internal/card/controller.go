package card

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/events"
	"github.com/phrazzld/lumina-api/internal/generation"
	"github.com/phrazzld/lumina-api/internal/pipeline"
	"github.com/phrazzld/lumina-api/internal/render"
)

// DefaultCopiedDuration is how long the copied indicator stays on.
const DefaultCopiedDuration = 2000 * time.Millisecond

// Spec identifies the greeting a card presents and the parameters its
// artwork is derived from.
type Spec struct {
	Index  int
	Item   domain.GreetingItem
	Themes []string
	Tone   domain.Tone
}

// Option customizes a Controller.
type Option func(*Controller)

// WithCopiedDuration overrides DefaultCopiedDuration.
func WithCopiedDuration(d time.Duration) Option {
	return func(c *Controller) {
		c.copiedFor = d
	}
}

// WithEmitter publishes phase changes and copies to emitter.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(c *Controller) {
		c.emitter = emitter
	}
}

// Controller owns the lifecycle of one card.
type Controller struct {
	logger    *slog.Logger
	acquirer  Acquirer
	emitter   events.EventEmitter
	copiedFor time.Duration

	index   int
	key     string
	text    string
	clean   string
	context string
	themes  []string
	tone    domain.Tone

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	run         uint64
	phase       domain.CardPhase
	imageURI    string
	errorKind   domain.ErrorKind
	retryCount  int
	copied      bool
	copyGen     uint64
	copiedTimer *time.Timer
}

// New creates a controller and immediately starts its acquisition. The
// controller's lifetime is bounded by parent and by Teardown.
func New(parent context.Context, logger *slog.Logger, acquirer Acquirer, spec Spec, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(parent)

	themes := make([]string, len(spec.Themes))
	copy(themes, spec.Themes)

	c := &Controller{
		logger:    logger.With("component", "card", "card_index", spec.Index),
		acquirer:  acquirer,
		emitter:   events.NopEmitter{},
		copiedFor: DefaultCopiedDuration,
		index:     spec.Index,
		key:       domain.CardKey(spec.Item.Text, spec.Index),
		text:      spec.Item.Text,
		clean:     domain.CleanText(spec.Item.Text),
		context:   spec.Item.Context,
		themes:    themes,
		tone:      spec.Tone,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	c.launchLocked()
	c.mu.Unlock()
	c.publishPhase(domain.CardPhaseLoading, domain.ErrorKindNone)

	return c
}

// Index is the card's position in its set.
func (c *Controller) Index() int {
	return c.index
}

// Key is the card's identity within its set.
func (c *Controller) Key() string {
	return c.key
}

// State returns a snapshot of the card.
func (c *Controller) State() domain.CardState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return domain.CardState{
		Index:      c.index,
		Key:        c.key,
		Text:       c.clean,
		Context:    c.context,
		Phase:      c.phase,
		ImageURI:   c.imageURI,
		ErrorKind:  c.errorKind,
		ErrorLabel: c.errorKind.Label(),
		RetryCount: c.retryCount,
		Copied:     c.copied,
	}
}

// Retry restarts the acquisition of a Failed card from retry count 0,
// stagger included.
func (c *Controller) Retry() error {
	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return ErrTornDown
	}
	if c.phase != domain.CardPhaseFailed {
		phase := c.phase
		c.mu.Unlock()
		return fmt.Errorf("%w: phase is %s", ErrNotFailed, phase)
	}
	c.launchLocked()
	c.mu.Unlock()

	c.logger.InfoContext(c.ctx, "Retrying card image")
	c.publishPhase(domain.CardPhaseLoading, domain.ErrorKindNone)
	return nil
}

// Copy writes the cleaned greeting text to clip and raises the copied
// indicator for the configured duration.
func (c *Controller) Copy(clip Clipboard) (string, error) {
	if c.ctx.Err() != nil {
		return "", ErrTornDown
	}

	if err := clip.WriteText(c.clean); err != nil {
		return "", fmt.Errorf("failed to write clipboard: %w", err)
	}

	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return "", ErrTornDown
	}
	c.copied = true
	c.copyGen++
	gen := c.copyGen
	if c.copiedTimer != nil {
		c.copiedTimer.Stop()
	}
	c.copiedTimer = time.AfterFunc(c.copiedFor, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.ctx.Err() == nil && c.copyGen == gen {
			c.copied = false
		}
	})
	c.mu.Unlock()

	events.Publish(c.ctx, c.emitter, c.logger, events.TypeCardCopied, map[string]int{"index": c.index})
	return c.clean, nil
}

// Download composites the card image into a PNG. It is only available
// once the card is Ready.
func (c *Controller) Download() (string, []byte, error) {
	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return "", nil, ErrTornDown
	}
	if c.phase != domain.CardPhaseReady || c.imageURI == "" {
		c.mu.Unlock()
		return "", nil, ErrNotReady
	}
	uri := c.imageURI
	c.mu.Unlock()

	png, err := render.CompositePNG(uri, c.clean)
	if err != nil {
		return "", nil, fmt.Errorf("failed to render card %d: %w", c.index, err)
	}
	return domain.DownloadFilename(c.index), png, nil
}

// Teardown cancels any pending acquisition. After it returns no further
// state is written. It is safe to call more than once.
func (c *Controller) Teardown() {
	c.mu.Lock()
	c.cancel()
	if c.copiedTimer != nil {
		c.copiedTimer.Stop()
	}
	c.mu.Unlock()
}

// Wait blocks until the card's acquisition goroutines have returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// launchLocked enters Loading and starts a new acquisition run. c.mu must be held.
func (c *Controller) launchLocked() {
	c.run++
	c.phase = domain.CardPhaseLoading
	c.imageURI = ""
	c.errorKind = domain.ErrorKindNone
	c.retryCount = 0

	run := c.run
	c.wg.Add(1)
	go c.acquire(run)
}

func (c *Controller) acquire(run uint64) {
	defer c.wg.Done()

	req := pipeline.Request{
		Text:   c.clean,
		Themes: c.themes,
		Tone:   string(c.tone),
		Index:  c.index,
		OnRetry: func(retryCount int) {
			c.apply(run, func() {
				c.retryCount = retryCount
			})
		},
	}

	uri, err := c.acquirer.Acquire(c.ctx, req)
	if c.ctx.Err() != nil {
		return
	}

	if err == nil {
		if c.apply(run, func() {
			c.phase = domain.CardPhaseReady
			c.imageURI = uri
		}) {
			c.publishPhase(domain.CardPhaseReady, domain.ErrorKindNone)
		}
		return
	}

	kind := classify(err)
	if c.apply(run, func() {
		c.phase = domain.CardPhaseFailed
		c.errorKind = kind
	}) {
		c.publishPhase(domain.CardPhaseFailed, kind)
	}
}

// apply runs fn under the lock if the card is alive and run is current.
func (c *Controller) apply(run uint64, fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.Err() != nil || run != c.run {
		return false
	}
	fn()
	return true
}

func (c *Controller) publishPhase(phase domain.CardPhase, kind domain.ErrorKind) {
	events.Publish(c.ctx, c.emitter, c.logger, events.TypeCardPhaseChanged, phaseChange{
		Index:     c.index,
		Key:       c.key,
		Phase:     phase,
		ErrorKind: kind,
	})
}

type phaseChange struct {
	Index     int              `json:"index"`
	Key       string           `json:"key"`
	Phase     domain.CardPhase `json:"phase"`
	ErrorKind domain.ErrorKind `json:"error_kind,omitempty"`
}

func classify(err error) domain.ErrorKind {
	var acqErr *pipeline.AcquisitionError
	if errors.As(err, &acqErr) {
		return acqErr.Kind
	}
	return generation.ClassifyImageError(err)
}

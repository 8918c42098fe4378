package studio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lumina-api/internal/autocycle"
	"github.com/phrazzld/lumina-api/internal/card"
	"github.com/phrazzld/lumina-api/internal/config"
	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/events"
	"github.com/phrazzld/lumina-api/internal/gallery"
	"golang.org/x/sync/singleflight"
)

// BannerMessage is shown when a greeting request fails.
const BannerMessage = "Creative synthesis interrupted. Retrying..."

// GreetingRequester fetches one greeting set. *greeting.Client satisfies it.
type GreetingRequester interface {
	Request(ctx context.Context, params domain.GeneratorParams) (domain.GreetingResponse, error)
}

// SetInfo describes a greeting set that replaced the gallery.
type SetInfo struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	CardCount   int       `json:"card_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Snapshot is a point-in-time view of the whole studio.
type Snapshot struct {
	Params   domain.GeneratorParams `json:"params"`
	Loading  bool                   `json:"loading"`
	Error    string                 `json:"error,omitempty"`
	Category string                 `json:"category"`
	SetID    *uuid.UUID             `json:"set_id,omitempty"`
	Cards    []domain.CardState     `json:"cards"`
	AutoMode bool                   `json:"auto_mode"`
	Progress float64                `json:"progress"`
}

// Option customizes a Studio.
type Option func(*Studio)

// WithEmitter publishes studio events to emitter.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(s *Studio) {
		s.emitter = emitter
	}
}

// WithRand sets the source used by Randomize.
func WithRand(r *rand.Rand) Option {
	return func(s *Studio) {
		s.rng = r
	}
}

// WithClipboard sets the clipboard copies are written to.
func WithClipboard(clip card.Clipboard) Option {
	return func(s *Studio) {
		s.clipboard = clip
	}
}

// Studio is the single owner of application state.
type Studio struct {
	logger    *slog.Logger
	greetings GreetingRequester
	gallery   *gallery.Gallery
	driver    *autocycle.Driver
	emitter   events.EventEmitter
	clipboard card.Clipboard

	// baseCtx bounds cards and the auto-cycle loop; it outlives requests.
	baseCtx context.Context

	group singleflight.Group

	mu       sync.Mutex
	rng      *rand.Rand
	params   domain.GeneratorParams
	loading  int
	errMsg   string
	category string
	current  *SetInfo
}

// New creates a studio with default parameters and an empty gallery. ctx
// bounds the lifetime of every card and of the auto-cycle loop.
func New(
	ctx context.Context,
	logger *slog.Logger,
	greetings GreetingRequester,
	g *gallery.Gallery,
	cycleCfg config.AutoCycleConfig,
	opts ...Option,
) (*Studio, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if greetings == nil {
		return nil, errors.New("greeting requester cannot be nil")
	}
	if g == nil {
		return nil, errors.New("gallery cannot be nil")
	}

	s := &Studio{
		logger:    logger.With("component", "studio"),
		greetings: greetings,
		gallery:   g,
		emitter:   events.NopEmitter{},
		clipboard: discardClipboard{},
		baseCtx:   ctx,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x2026)),
		params:    domain.DefaultParams(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.driver = autocycle.New(logger, s, cycleCfg)

	return s, nil
}

// Params returns a copy of the current parameters.
func (s *Studio) Params() domain.GeneratorParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Clone()
}

// SetParams validates and replaces the current parameters. The auto-cycle
// clock is deliberately left alone.
func (s *Studio) SetParams(ctx context.Context, params domain.GeneratorParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.params = params.Clone()
	s.mu.Unlock()

	events.Publish(ctx, s.emitter, s.logger, events.TypeParamsChanged, params)
	return nil
}

// Randomize draws a new audience, tone and three distinct themes.
func (s *Studio) Randomize(ctx context.Context) {
	s.mu.Lock()
	params := domain.RandomParams(s.rng)
	s.params = params.Clone()
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Parameters randomized",
		"audience", params.Audience,
		"tone", params.Tone,
		"themes", params.Themes)
	events.Publish(ctx, s.emitter, s.logger, events.TypeParamsChanged, params)
}

// Generate requests a greeting set with the current parameters.
func (s *Studio) Generate(ctx context.Context) error {
	_, err := s.GenerateSet(ctx, s.Params())
	return err
}

// GenerateSet requests a greeting set for params and, on success, replaces
// the gallery. Concurrent calls with identical params share one request.
func (s *Studio) GenerateSet(ctx context.Context, params domain.GeneratorParams) (SetInfo, error) {
	if err := params.Validate(); err != nil {
		return SetInfo{}, err
	}

	v, err, shared := s.group.Do(params.Key(), func() (any, error) {
		return s.runGeneration(ctx, params)
	})
	if shared {
		s.logger.DebugContext(ctx, "Greeting request coalesced", "params_key", params.Key())
	}
	if err != nil {
		return SetInfo{}, err
	}
	return v.(SetInfo), nil
}

func (s *Studio) runGeneration(ctx context.Context, params domain.GeneratorParams) (SetInfo, error) {
	s.mu.Lock()
	s.loading++
	s.errMsg = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}()

	resp, err := s.greetings.Request(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return SetInfo{}, fmt.Errorf("greeting request cancelled: %w", ctx.Err())
		}

		s.mu.Lock()
		s.errMsg = BannerMessage
		s.mu.Unlock()

		events.Publish(ctx, s.emitter, s.logger, events.TypeGreetingsFailed, map[string]string{
			"message": BannerMessage,
		})
		return SetInfo{}, err
	}

	info := SetInfo{
		ID:          uuid.New(),
		Category:    resp.Category,
		CardCount:   len(resp.Greetings),
		GeneratedAt: time.Now(),
	}

	s.mu.Lock()
	// A set that arrives after its request was abandoned is discarded.
	if ctx.Err() != nil {
		s.mu.Unlock()
		return SetInfo{}, fmt.Errorf("greeting request cancelled: %w", ctx.Err())
	}
	s.gallery.Replace(s.baseCtx, resp.Greetings, params)
	s.category = resp.Category
	s.current = &info
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Greeting set ready",
		"set_id", info.ID,
		"category", info.Category,
		"card_count", info.CardCount)
	events.Publish(ctx, s.emitter, s.logger, events.TypeGreetingsGenerated, info)

	return info, nil
}

// SetAutoMode turns the auto-cycle loop on or off. It reports whether the
// mode actually changed.
func (s *Studio) SetAutoMode(ctx context.Context, enabled bool) bool {
	var changed bool
	if enabled {
		changed = s.driver.Start(s.baseCtx)
	} else {
		changed = s.driver.Stop()
	}

	if changed {
		events.Publish(ctx, s.emitter, s.logger, events.TypeAutoCycleToggled, map[string]bool{"enabled": enabled})
	}
	return changed
}

// Card returns the controller at index in the current set.
func (s *Studio) Card(index int) (*card.Controller, error) {
	return s.gallery.Card(index)
}

// CopyCard copies the cleaned text of the card at index to the studio clipboard.
func (s *Studio) CopyCard(index int) (string, error) {
	c, err := s.gallery.Card(index)
	if err != nil {
		return "", err
	}
	return c.Copy(s.clipboard)
}

// Snapshot returns the full studio view.
func (s *Studio) Snapshot() Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		Params:   s.params.Clone(),
		Loading:  s.loading > 0,
		Error:    s.errMsg,
		Category: s.category,
		Cards:    s.gallery.States(),
	}
	if s.current != nil {
		id := s.current.ID
		snap.SetID = &id
	}
	s.mu.Unlock()

	snap.AutoMode = s.driver.Running()
	snap.Progress = s.driver.Progress()
	return snap
}

// Close stops the auto-cycle loop and tears down every card.
func (s *Studio) Close() {
	s.driver.Stop()
	s.gallery.Close()
}

type discardClipboard struct{}

func (discardClipboard) WriteText(string) error { return nil }

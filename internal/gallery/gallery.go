// Package gallery holds the card controllers of the current greeting set.
package gallery

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/phrazzld/lumina-api/internal/card"
	"github.com/phrazzld/lumina-api/internal/domain"
)

// ErrCardNotFound is returned when no card exists at the requested index.
var ErrCardNotFound = errors.New("card not found")

// Gallery owns the live card controllers. Replacing the set tears every
// existing card down before the new ones are created, so cards never
// survive across sets even when their text is unchanged.
type Gallery struct {
	logger   *slog.Logger
	acquirer card.Acquirer
	opts     []card.Option

	mu    sync.RWMutex
	cards []*card.Controller
}

// New creates an empty gallery. opts are applied to every card it creates.
func New(logger *slog.Logger, acquirer card.Acquirer, opts ...card.Option) *Gallery {
	return &Gallery{
		logger:   logger.With("component", "gallery"),
		acquirer: acquirer,
		opts:     opts,
	}
}

// Replace tears down the current cards and creates one card per item, in
// order, with indices 0..len(items)-1.
func (g *Gallery) Replace(ctx context.Context, items []domain.GreetingItem, params domain.GeneratorParams) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, c := range g.cards {
		c.Teardown()
	}

	cards := make([]*card.Controller, 0, len(items))
	for i, item := range items {
		cards = append(cards, card.New(ctx, g.logger, g.acquirer, card.Spec{
			Index:  i,
			Item:   item,
			Themes: params.Themes,
			Tone:   params.Tone,
		}, g.opts...))
	}
	g.cards = cards

	g.logger.InfoContext(ctx, "Gallery replaced", "card_count", len(cards))
}

// Card returns the controller at index.
func (g *Gallery) Card(index int) (*card.Controller, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if index < 0 || index >= len(g.cards) {
		return nil, ErrCardNotFound
	}
	return g.cards[index], nil
}

// Len is the number of cards in the current set.
func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cards)
}

// States snapshots every card in index order.
func (g *Gallery) States() []domain.CardState {
	g.mu.RLock()
	cards := make([]*card.Controller, len(g.cards))
	copy(cards, g.cards)
	g.mu.RUnlock()

	states := make([]domain.CardState, 0, len(cards))
	for _, c := range cards {
		states = append(states, c.State())
	}
	return states
}

// Close tears down every card and waits for their goroutines.
func (g *Gallery) Close() {
	g.mu.Lock()
	cards := g.cards
	g.cards = nil
	g.mu.Unlock()

	for _, c := range cards {
		c.Teardown()
	}
	for _, c := range cards {
		c.Wait()
	}
}

package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phasePayload struct {
	Index int    `json:"index"`
	Phase string `json:"phase"`
}

func TestNewStudioEvent(t *testing.T) {
	payload := phasePayload{Index: 3, Phase: "ready"}

	event, err := NewStudioEvent(TypeCardPhaseChanged, payload)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeCardPhaseChanged, event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	var decoded phasePayload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewStudioEvent_UnmarshalablePayload(t *testing.T) {
	_, err := NewStudioEvent(TypeParamsChanged, make(chan int))
	assert.Error(t, err)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *StudioEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *StudioEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestPublish(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("delivers to handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		handler := &MockEventHandler{}
		emitter.RegisterHandler(handler)

		Publish(ctx, emitter, logger, TypeAutoCycleToggled, map[string]bool{"enabled": true})

		require.Equal(t, 1, handler.HandledCount)
		assert.Equal(t, TypeAutoCycleToggled, handler.LastEvent.Type)
	})

	t.Run("swallows handler errors", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		emitter.RegisterHandler(&MockEventHandler{HandlerError: errors.New("boom")})

		assert.NotPanics(t, func() {
			Publish(ctx, emitter, logger, TypeCardCopied, phasePayload{Index: 1})
		})
	})

	t.Run("nil emitter is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Publish(ctx, nil, logger, TypeCardCopied, phasePayload{})
		})
	})
}

func TestJournal(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps insertion order below capacity", func(t *testing.T) {
		j := NewJournal(4)
		for i := 0; i < 3; i++ {
			event, err := NewStudioEvent(TypeCardPhaseChanged, phasePayload{Index: i})
			require.NoError(t, err)
			require.NoError(t, j.HandleEvent(ctx, event))
		}

		recent := j.Recent(0)
		require.Len(t, recent, 3)
		for i, event := range recent {
			var p phasePayload
			require.NoError(t, event.UnmarshalPayload(&p))
			assert.Equal(t, i, p.Index)
		}
	})

	t.Run("drops oldest when full", func(t *testing.T) {
		j := NewJournal(3)
		for i := 0; i < 5; i++ {
			event, err := NewStudioEvent(TypeCardPhaseChanged, phasePayload{Index: i})
			require.NoError(t, err)
			require.NoError(t, j.HandleEvent(ctx, event))
		}

		recent := j.Recent(0)
		require.Len(t, recent, 3)
		var first, last phasePayload
		require.NoError(t, recent[0].UnmarshalPayload(&first))
		require.NoError(t, recent[2].UnmarshalPayload(&last))
		assert.Equal(t, 2, first.Index)
		assert.Equal(t, 4, last.Index)

		limited := j.Recent(2)
		require.Len(t, limited, 2)
		assert.Equal(t, recent[1].ID, limited[0].ID)
	})

	t.Run("default size", func(t *testing.T) {
		j := NewJournal(0)
		assert.Empty(t, j.Recent(0))
		assert.Len(t, j.buf, DefaultJournalSize)
	})
}

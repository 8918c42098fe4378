package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the studio.
const (
	TypeCardPhaseChanged   = "card.phase_changed"
	TypeCardCopied         = "card.copied"
	TypeGreetingsGenerated = "greetings.generated"
	TypeGreetingsFailed    = "greetings.failed"
	TypeParamsChanged      = "params.changed"
	TypeAutoCycleToggled   = "autocycle.toggled"
)

// StudioEvent records one observable state change.
type StudioEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *StudioEvent) UnmarshalPayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// NewStudioEvent creates a new StudioEvent with the specified type and payload.
func NewStudioEvent(eventType string, payload any) (*StudioEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &StudioEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *StudioEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows cards and the studio to publish events without direct
// knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *StudioEvent) error
}

// NopEmitter discards every event.
type NopEmitter struct{}

// EmitEvent implements EventEmitter.
func (NopEmitter) EmitEvent(context.Context, *StudioEvent) error { return nil }

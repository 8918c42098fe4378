package events

import (
	"context"
	"log/slog"
	"sync"
)

// LoggingHandler writes every event to a structured logger at debug level.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a handler that logs events.
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger.With("component", "event_log")}
}

// HandleEvent implements EventHandler.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *StudioEvent) error {
	h.logger.DebugContext(ctx, "studio event",
		"event_id", event.ID,
		"event_type", event.Type,
		"payload", string(event.Payload))
	return nil
}

// DefaultJournalSize is how many events a Journal keeps by default.
const DefaultJournalSize = 100

// Journal retains the most recent events in a fixed-size ring.
type Journal struct {
	mu     sync.Mutex
	buf    []*StudioEvent
	next   int
	filled bool
}

// NewJournal creates a journal holding at most size events.
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = DefaultJournalSize
	}
	return &Journal{buf: make([]*StudioEvent, size)}
}

// HandleEvent implements EventHandler.
func (j *Journal) HandleEvent(_ context.Context, event *StudioEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.buf[j.next] = event
	j.next = (j.next + 1) % len(j.buf)
	if j.next == 0 {
		j.filled = true
	}
	return nil
}

// Recent returns up to limit events, oldest first. limit <= 0 means all.
func (j *Journal) Recent(limit int) []*StudioEvent {
	j.mu.Lock()
	defer j.mu.Unlock()

	var ordered []*StudioEvent
	if j.filled {
		ordered = append(ordered, j.buf[j.next:]...)
	}
	ordered = append(ordered, j.buf[:j.next]...)

	if limit > 0 && len(ordered) > limit {
		ordered = ordered[len(ordered)-limit:]
	}

	out := make([]*StudioEvent, len(ordered))
	copy(out, ordered)
	return out
}

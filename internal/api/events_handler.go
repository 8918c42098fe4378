package api

import (
	"net/http"

	"github.com/phrazzld/lumina-api/internal/api/shared"
	"github.com/phrazzld/lumina-api/internal/events"
)

// EventsHandler serves the recent event journal.
type EventsHandler struct {
	journal *events.Journal
}

// NewEventsHandler creates a new EventsHandler
func NewEventsHandler(journal *events.Journal) *EventsHandler {
	return &EventsHandler{journal: journal}
}

// ListEvents handles GET /api/events?limit=N.
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit, err := getQueryLimit(r, events.DefaultJournalSize)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid limit", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, EventsResponse{Events: h.journal.Recent(limit)})
}

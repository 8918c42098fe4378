package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/lumina-api/internal/api/shared"
	"github.com/phrazzld/lumina-api/internal/card"
	"github.com/phrazzld/lumina-api/internal/platform/logger"
)

// CardHandler handles per-card HTTP requests
type CardHandler struct {
	studio StudioService
	logger *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(s StudioService, logger *slog.Logger) *CardHandler {
	if s == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("studio cannot be nil for CardHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		studio: s,
		logger: logger.With(slog.String("component", "card_handler")),
	}
}

// GetCard handles GET /api/cards/{index}.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, c.State())
}

// RetryCard handles POST /api/cards/{index}/retry.
// Only a failed card can be retried; it restarts from retry count 0.
func (h *CardHandler) RetryCard(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := c.Retry(); err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("card retry started",
		slog.Int("index", c.Index()))
	shared.RespondWithJSON(w, r, http.StatusAccepted, c.State())
}

// CopyCard handles POST /api/cards/{index}/copy.
func (h *CardHandler) CopyCard(w http.ResponseWriter, r *http.Request) {
	index, err := getPathIndex(r, "index")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid card index", err)
		return
	}

	text, err := h.studio.CopyCard(index)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, CopyResponse{Index: index, Text: text, Copied: true})
}

// DownloadCard handles GET /api/cards/{index}/download and streams the
// composited PNG.
func (h *CardHandler) DownloadCard(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	filename, png, err := c.Download()
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	shared.RespondWithAttachment(w, r, "image/png", filename, png)
}

func (h *CardHandler) lookup(w http.ResponseWriter, r *http.Request) (*card.Controller, bool) {
	index, err := getPathIndex(r, "index")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid card index", err)
		return nil, false
	}

	c, err := h.studio.Card(index)
	if err != nil {
		h.respondError(w, r, err)
		return nil, false
	}
	return c, true
}

func (h *CardHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

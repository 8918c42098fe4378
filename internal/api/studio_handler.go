package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/lumina-api/internal/api/shared"
	"github.com/phrazzld/lumina-api/internal/card"
	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/platform/logger"
	"github.com/phrazzld/lumina-api/internal/studio"
)

// StudioService is the studio surface used by the HTTP handlers.
// *studio.Studio satisfies it.
type StudioService interface {
	Snapshot() studio.Snapshot
	Params() domain.GeneratorParams
	SetParams(ctx context.Context, params domain.GeneratorParams) error
	Randomize(ctx context.Context)
	GenerateSet(ctx context.Context, params domain.GeneratorParams) (studio.SetInfo, error)
	SetAutoMode(ctx context.Context, enabled bool) bool
	Card(index int) (*card.Controller, error)
	CopyCard(index int) (string, error)
}

// StudioHandler serves the studio-wide endpoints.
type StudioHandler struct {
	studio StudioService
	logger *slog.Logger
}

// NewStudioHandler creates a new StudioHandler
func NewStudioHandler(s StudioService, logger *slog.Logger) *StudioHandler {
	if s == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("studio cannot be nil for StudioHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StudioHandler{
		studio: s,
		logger: logger.With(slog.String("component", "studio_handler")),
	}
}

// GetStudio handles GET /api/studio.
func (h *StudioHandler) GetStudio(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.studio.Snapshot())
}

// GetParams handles GET /api/params.
func (h *StudioHandler) GetParams(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.studio.Params())
}

// UpdateParams handles PUT /api/params. The auto-cycle clock is not reset.
func (h *StudioHandler) UpdateParams(w http.ResponseWriter, r *http.Request) {
	params, ok := h.decodeParams(w, r, true)
	if !ok {
		return
	}

	if err := h.studio.SetParams(r.Context(), *params); err != nil {
		h.respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.studio.Params())
}

// RandomizeParams handles POST /api/params/randomize.
func (h *StudioHandler) RandomizeParams(w http.ResponseWriter, r *http.Request) {
	h.studio.Randomize(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, h.studio.Params())
}

// GenerateGreetings handles POST /api/greetings. A body, when present,
// replaces the current parameters before the request is made.
func (h *StudioHandler) GenerateGreetings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params, ok := h.decodeParams(w, r, false)
	if !ok {
		return
	}
	if params == nil {
		current := h.studio.Params()
		params = &current
	} else if err := h.studio.SetParams(r.Context(), *params); err != nil {
		h.respondError(w, r, err)
		return
	}

	info, err := h.studio.GenerateSet(r.Context(), *params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug("greeting set generated",
		slog.String("set_id", info.ID.String()),
		slog.Int("card_count", info.CardCount))
	shared.RespondWithJSON(w, r, http.StatusCreated, GreetingSetResponse{
		Set:   info,
		Cards: h.studio.Snapshot().Cards,
	})
}

// SetAutoCycle handles PUT /api/autocycle.
func (h *StudioHandler) SetAutoCycle(w http.ResponseWriter, r *http.Request) {
	var req AutoCycleRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	// Driver lifetime is owned by the studio, never by this request.
	changed := h.studio.SetAutoMode(r.Context(), *req.Enabled)
	snap := h.studio.Snapshot()
	shared.RespondWithJSON(w, r, http.StatusOK, AutoCycleResponse{
		Enabled:  snap.AutoMode,
		Changed:  changed,
		Progress: snap.Progress,
	})
}

// decodeParams reads a ParamsRequest. When required is false an empty body
// yields nil params and ok. On failure the error response is already written.
func (h *StudioHandler) decodeParams(w http.ResponseWriter, r *http.Request, required bool) (*domain.GeneratorParams, bool) {
	var req ParamsRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) && !required {
			return nil, true
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return nil, false
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return nil, false
	}

	params := req.ToParams()
	return &params, true
}

func (h *StudioHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

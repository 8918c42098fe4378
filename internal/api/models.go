package api

import (
	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/events"
	"github.com/phrazzld/lumina-api/internal/studio"
)

// ParamsRequest is the body of PUT /api/params and the optional body of
// POST /api/greetings. Enum membership is checked by the domain.
type ParamsRequest struct {
	Audience string   `json:"audience" validate:"required"`
	Tone     string   `json:"tone" validate:"required"`
	Themes   []string `json:"themes" validate:"required,min=1,max=8,dive,required"`
}

// ToParams converts the request into domain parameters.
func (r ParamsRequest) ToParams() domain.GeneratorParams {
	themes := make([]string, len(r.Themes))
	copy(themes, r.Themes)
	return domain.GeneratorParams{
		Audience: domain.Audience(r.Audience),
		Tone:     domain.Tone(r.Tone),
		Themes:   themes,
	}
}

// AutoCycleRequest is the body of PUT /api/autocycle.
type AutoCycleRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// AutoCycleResponse reports the auto mode after a toggle.
type AutoCycleResponse struct {
	Enabled  bool    `json:"enabled"`
	Changed  bool    `json:"changed"`
	Progress float64 `json:"progress"`
}

// GreetingSetResponse is returned once a new set replaced the gallery.
type GreetingSetResponse struct {
	Set   studio.SetInfo     `json:"set"`
	Cards []domain.CardState `json:"cards"`
}

// CopyResponse carries the cleaned greeting text for the client clipboard.
type CopyResponse struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Copied bool   `json:"copied"`
}

// EventsResponse lists recent studio events, oldest first.
type EventsResponse struct {
	Events []*events.StudioEvent `json:"events"`
}

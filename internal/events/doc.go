// Package events provides the studio's in-process event bus.
//
// Cards and the studio publish StudioEvents when something observable
// changes (a card's phase, a new greeting set, auto mode toggling) without
// knowing who listens. The server registers a logging handler and a bounded
// Journal that backs the recent-events endpoint.
package events

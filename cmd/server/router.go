package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/lumina-api/internal/api"
	apiMiddleware "github.com/phrazzld/lumina-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	studioHandler := api.NewStudioHandler(app.studio, app.logger)
	cardHandler := api.NewCardHandler(app.studio, app.logger)
	eventsHandler := api.NewEventsHandler(app.journal)

	r.Route("/api", func(r chi.Router) {
		r.Get("/studio", studioHandler.GetStudio)

		r.Get("/params", studioHandler.GetParams)
		r.Put("/params", studioHandler.UpdateParams)
		r.Post("/params/randomize", studioHandler.RandomizeParams)

		r.Post("/greetings", studioHandler.GenerateGreetings)
		r.Put("/autocycle", studioHandler.SetAutoCycle)

		r.Route("/cards/{index}", func(r chi.Router) {
			r.Get("/", cardHandler.GetCard)
			r.Post("/retry", cardHandler.RetryCard)
			r.Post("/copy", cardHandler.CopyCard)
			r.Get("/download", cardHandler.DownloadCard)
		})

		r.Get("/events", eventsHandler.ListEvents)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

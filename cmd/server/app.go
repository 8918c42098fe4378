package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lumina-api/internal/card"
	"github.com/phrazzld/lumina-api/internal/config"
	"github.com/phrazzld/lumina-api/internal/events"
	"github.com/phrazzld/lumina-api/internal/gallery"
	"github.com/phrazzld/lumina-api/internal/generation"
	"github.com/phrazzld/lumina-api/internal/greeting"
	"github.com/phrazzld/lumina-api/internal/pipeline"
	"github.com/phrazzld/lumina-api/internal/platform/gemini"
	"github.com/phrazzld/lumina-api/internal/studio"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	studio  *studio.Studio
	journal *events.Journal

	// cancel ends the context every card and the auto-cycle loop run under.
	cancel context.CancelFunc
}

// newApplication creates a new application backed by the Gemini client.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	client, err := gemini.NewClient(ctx, logger.With("component", "gemini_client"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	logger.Info("Gemini client initialized successfully")

	return newApplicationWithGenerators(ctx, cfg, logger, client, client)
}

// newApplicationWithGenerators wires the studio around the given generators.
func newApplicationWithGenerators(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	text generation.TextGenerator,
	image generation.ImageGenerator,
) (*application, error) {
	greetings, err := greeting.NewClient(logger, text)
	if err != nil {
		return nil, fmt.Errorf("failed to create greeting client: %w", err)
	}

	acquirer, err := pipeline.New(logger, image, pipeline.PolicyFromConfig(cfg.Pipeline))
	if err != nil {
		return nil, fmt.Errorf("failed to create image pipeline: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	journal := events.NewJournal(events.DefaultJournalSize)
	emitter.RegisterHandler(events.NewLoggingHandler(logger))
	emitter.RegisterHandler(journal)

	cards := gallery.New(logger, acquirer, card.WithEmitter(emitter))

	appCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s, err := studio.New(appCtx, logger, greetings, cards, cfg.AutoCycle,
		studio.WithEmitter(emitter),
		studio.WithClipboard(card.LogClipboard{Logger: logger.With("component", "clipboard")}),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create studio: %w", err)
	}

	logger.Info("Application initialized successfully")
	return &application{
		config:  cfg,
		logger:  logger,
		studio:  s,
		journal: journal,
		cancel:  cancel,
	}, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup stops the auto-cycle loop and tears down every card.
func (app *application) cleanup() {
	app.studio.Close()
	app.cancel()
	app.logger.Info("Application shutdown completed")
}

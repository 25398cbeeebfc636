package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heyged/gedprep/internal/config"
	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/events"
	"github.com/heyged/gedprep/internal/generation"
	"github.com/heyged/gedprep/internal/platform/gemini"
	"github.com/heyged/gedprep/internal/scoreboard"
	"github.com/heyged/gedprep/internal/service"
	"github.com/heyged/gedprep/internal/supply"
	"golang.org/x/sync/errgroup"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator  generation.Generator
	questions  *supply.QuestionSupplier
	flashcards *supply.FlashcardSupplier

	emitter *events.InMemoryEmitter
	board   *scoreboard.Board

	tests *service.TestService
	decks *service.DeckService
}

// newApplication wires the generator, suppliers, scoreboard and session
// services. With llm.offline set no Gemini client is created and every
// request is served from the fallback bank.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.generator, err = gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize content generator: %w", err)
	}

	picker := dedup.NewRandomPicker()
	app.questions = supply.NewQuestionSupplier(app.generator, picker, cfg.Quiz, logger)
	app.flashcards = supply.NewFlashcardSupplier(app.generator, picker, logger)

	app.emitter = events.NewInMemoryEmitter(logger)
	app.board = scoreboard.NewBoard(logger)
	app.emitter.RegisterHandler(app.board)

	app.tests = service.NewTestService(app.questions, app.emitter, cfg.Sessions, logger)
	app.decks = service.NewDeckService(app.flashcards, cfg.Flashcards, cfg.Sessions, logger)

	return app, nil
}

// Run serves HTTP and reaps idle sessions until ctx is cancelled or one of
// them fails, then shuts everything down.
func (app *application) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.startHTTPServer(gctx, app.setupRouter())
	})
	g.Go(func() error {
		return app.tests.Run(gctx)
	})
	g.Go(func() error {
		return app.decks.Run(gctx)
	})

	err := g.Wait()
	app.logger.Info("Server stopped")
	return err
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/heyged/gedprep/internal/api"
	apiMiddleware "github.com/heyged/gedprep/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	testHandler := api.NewTestHandler(app.tests, app.logger)
	deckHandler := api.NewDeckHandler(app.decks, app.logger)
	scoreHandler := api.NewScoreHandler(app.board)

	r.Route("/api", func(r chi.Router) {
		// Dashboard
		r.Get("/subjects", scoreHandler.ListSubjects)
		r.Get("/scores", scoreHandler.ListScores)

		// Practice tests
		r.Post("/tests", testHandler.StartTest)
		r.Route("/tests/{id}", func(r chi.Router) {
			r.Get("/", testHandler.GetTest)
			r.Delete("/", testHandler.ExitTest)
			r.Post("/select", testHandler.SelectOption)
			r.Post("/check", testHandler.CheckAnswer)
			r.Post("/skip", testHandler.SkipQuestion)
			r.Post("/next", testHandler.NextQuestion)
		})

		// Flashcards
		r.Post("/decks", deckHandler.StartDeck)
		r.Route("/decks/{id}", func(r chi.Router) {
			r.Get("/", deckHandler.GetDeck)
			r.Delete("/", deckHandler.DeleteDeck)
			r.Post("/begin", deckHandler.BeginDeck)
			r.Post("/flip", deckHandler.FlipCard)
			r.Post("/next", deckHandler.NextCard)
			r.Post("/previous", deckHandler.PreviousCard)
			r.Post("/reset", deckHandler.ResetDeck)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

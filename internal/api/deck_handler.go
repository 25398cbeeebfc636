package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heyged/gedprep/internal/api/shared"
	"github.com/heyged/gedprep/internal/deck"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/service"
)

// DeckSessions is the part of service.DeckService used by DeckHandler.
type DeckSessions interface {
	Start(ctx context.Context, subject domain.Subject) (*service.DeckHandle, error)
	Get(id string) (*service.DeckHandle, error)
	Remove(id string) error
}

// DeckHandler handles flashcard deck requests.
type DeckHandler struct {
	decks  DeckSessions
	logger *slog.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(decks DeckSessions, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{
		decks:  decks,
		logger: logger.With("handler", "deck"),
	}
}

// StartDeck handles POST /api/decks. The first batch is loaded before the
// response is written.
func (h *DeckHandler) StartDeck(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	subject, err := domain.ParseSubject(req.Subject)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	handle, err := h.decks.Start(r.Context(), subject)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start flashcards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, deckToResponse(handle))
}

// GetDeck handles GET /api/decks/{id}.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(*deck.Session) error { return nil })
}

// FlipCard handles POST /api/decks/{id}/flip.
func (h *DeckHandler) FlipCard(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, (*deck.Session).Flip)
}

// NextCard handles POST /api/decks/{id}/next. It may load another batch.
func (h *DeckHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(s *deck.Session) error { return s.Next(r.Context()) })
}

// PreviousCard handles POST /api/decks/{id}/previous.
func (h *DeckHandler) PreviousCard(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, (*deck.Session).Previous)
}

// ResetDeck handles POST /api/decks/{id}/reset.
func (h *DeckHandler) ResetDeck(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(s *deck.Session) error {
		s.Reset()
		return nil
	})
}

// BeginDeck handles POST /api/decks/{id}/begin, choosing a subject for a
// deck that was reset.
func (h *DeckHandler) BeginDeck(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	subject, err := domain.ParseSubject(req.Subject)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.act(w, r, func(s *deck.Session) error { return s.Begin(r.Context(), subject) })
}

// DeleteDeck handles DELETE /api/decks/{id}.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.decks.Remove(id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DeckHandler) act(w http.ResponseWriter, r *http.Request, op func(*deck.Session) error) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	handle, err := h.decks.Get(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := op(handle.Session); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deckToResponse(handle))
}

func deckToResponse(handle *service.DeckHandle) DeckSessionResponse {
	return DeckSessionResponse{ID: handle.ID, View: handle.Session.View()}
}

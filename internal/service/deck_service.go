package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heyged/gedprep/internal/config"
	"github.com/heyged/gedprep/internal/deck"
	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/domain"
)

// DeckHandle identifies a flashcard session.
type DeckHandle struct {
	ID        string
	Session   *deck.Session
	CreatedAt time.Time
}

// DeckService starts flashcard sessions and keeps them until they are
// removed or reaped.
type DeckService struct {
	supplier  deck.Supplier
	deckSize  int
	batchSize int
	shared    bool
	ttl       time.Duration
	interval  time.Duration
	logger    *slog.Logger
	now       func() time.Time

	sessions *registry[*deck.Session]
}

// NewDeckService creates a DeckService.
func NewDeckService(
	supplier deck.Supplier,
	flashcards config.FlashcardsConfig,
	sessions config.SessionsConfig,
	logger *slog.Logger,
) *DeckService {
	return &DeckService{
		supplier:  supplier,
		deckSize:  flashcards.DeckSize,
		batchSize: flashcards.BatchSize,
		shared:    flashcards.SharedUsedSet,
		ttl:       sessions.TTL,
		interval:  sessions.ReapInterval,
		logger:    logger.With("component", "deck_service"),
		now:       time.Now,
		sessions:  newRegistry[*deck.Session](),
	}
}

// Start creates a deck session for subject and loads its first batch.
func (s *DeckService) Start(ctx context.Context, subject domain.Subject) (*DeckHandle, error) {
	id := uuid.NewString()
	opts := deck.Options{
		DeckSize:  s.deckSize,
		BatchSize: s.batchSize,
		Logger:    s.logger.With("session_id", id),
		Now:       s.now,
	}
	if s.shared {
		opts.Used = dedup.Shared()
	}

	session, err := deck.New(s.supplier, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck session: %w", err)
	}

	if err := session.Begin(ctx, subject); err != nil {
		return nil, err
	}

	handle := &DeckHandle{ID: id, Session: session, CreatedAt: s.now()}
	s.sessions.put(id, &entry[*deck.Session]{session: session, createdAt: handle.CreatedAt})
	return handle, nil
}

// Get returns the deck session with the given ID.
func (s *DeckService) Get(id string) (*DeckHandle, error) {
	e, ok := s.sessions.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &DeckHandle{ID: id, Session: e.session, CreatedAt: e.createdAt}, nil
}

// Remove forgets the deck session.
func (s *DeckService) Remove(id string) error {
	if !s.sessions.remove(id) {
		return ErrSessionNotFound
	}
	return nil
}

// Len returns the number of tracked sessions.
func (s *DeckService) Len() int {
	return s.sessions.len()
}

// Reap forgets every deck idle for longer than the configured TTL.
func (s *DeckService) Reap(now time.Time) int {
	removed := s.sessions.reap(now.Add(-s.ttl), lastActivity[*deck.Session])
	if removed > 0 {
		s.logger.Info("Reaped idle deck sessions", "count", removed)
	}
	return removed
}

// Run reaps idle decks on the configured interval until ctx is done.
func (s *DeckService) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.sessions.removeAll()
			return nil
		case <-ticker.C:
			s.Reap(s.now())
		}
	}
}

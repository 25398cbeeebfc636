package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/domain"
)

// Defaults used when Options leave them unset.
const (
	DefaultDeckSize  = 100
	DefaultBatchSize = 5
)

// ErrInvalidState is returned when an action is not available in the
// session's current state.
var ErrInvalidState = errors.New("action not allowed in current deck state")

// Supplier produces batches of flashcards. It must not fail; a short or
// empty batch is allowed.
type Supplier interface {
	Batch(ctx context.Context, subject domain.Subject, count int, used *dedup.UsedSet) []domain.Flashcard
}

// Options configures a Session.
type Options struct {
	// DeckSize is the number of cards studied before the deck completes.
	DeckSize int
	// BatchSize is the number of cards fetched per load.
	BatchSize int
	// Used records served card texts; a fresh set is used when nil.
	Used   *dedup.UsedSet
	Logger *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is one pass through a flashcard deck. It is safe for concurrent use.
type Session struct {
	supplier  Supplier
	deckSize  int
	batchSize int
	used      *dedup.UsedSet
	logger    *slog.Logger
	now       func() time.Time

	mu           sync.Mutex
	state        State
	subject      domain.Subject
	cards        []domain.Flashcard
	epoch        uint64
	lastActivity time.Time
}

// New creates a Session in the Selecting state.
func New(supplier Supplier, opts Options) (*Session, error) {
	if supplier == nil {
		return nil, fmt.Errorf("%w: supplier cannot be nil", domain.ErrValidation)
	}

	s := &Session{
		supplier:  supplier,
		deckSize:  opts.DeckSize,
		batchSize: opts.BatchSize,
		used:      opts.Used,
		logger:    opts.Logger,
		now:       opts.Now,
		state:     Selecting{},
	}

	if s.deckSize <= 0 {
		s.deckSize = DefaultDeckSize
	}
	if s.batchSize <= 0 {
		s.batchSize = DefaultBatchSize
	}
	if s.used == nil {
		s.used = dedup.NewUsedSet()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "deck_session")
	if s.now == nil {
		s.now = time.Now
	}
	s.lastActivity = s.now()

	return s, nil
}

// Begin selects subject and loads the first batch.
func (s *Session) Begin(ctx context.Context, subject domain.Subject) error {
	if !subject.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSubject, subject)
	}

	s.mu.Lock()
	if _, ok := s.state.(Selecting); !ok {
		s.mu.Unlock()
		return ErrInvalidState
	}
	s.subject = subject
	s.cards = nil
	s.state = Loading{}
	s.epoch++
	epoch := s.epoch
	s.touchLocked()
	s.mu.Unlock()

	batch := s.supplier.Batch(ctx, subject, min(s.batchSize, s.deckSize), s.used)

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		// Reset while loading.
		return nil
	}

	s.cards = batch
	if len(s.cards) == 0 {
		s.logger.WarnContext(ctx, "No flashcards available", "subject", subject.Slug())
		s.state = Completed{}
		return nil
	}

	s.state = Viewing{}
	s.logger.InfoContext(ctx, "Flashcard deck started",
		"subject", subject.Slug(),
		"deck_size", s.deckSize,
		"loaded", len(s.cards))
	return nil
}

// Flip turns the current card over.
func (s *Session) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.state.(Viewing)
	if !ok {
		return ErrInvalidState
	}
	v.Flipped = !v.Flipped
	s.state = v
	s.touchLocked()
	return nil
}

// Next moves to the following card, loading another batch when the loaded
// cards are used up and the deck is not yet complete.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	v, ok := s.state.(Viewing)
	if !ok {
		s.mu.Unlock()
		return ErrInvalidState
	}
	s.touchLocked()

	if v.Index < len(s.cards)-1 {
		s.state = Viewing{Index: v.Index + 1}
		s.mu.Unlock()
		return nil
	}

	if v.Index >= s.deckSize-1 {
		s.state = Completed{}
		s.mu.Unlock()
		s.logger.InfoContext(ctx, "Flashcard deck completed", "cards", len(s.cards))
		return nil
	}

	subject := s.subject
	count := min(s.batchSize, s.deckSize-len(s.cards))
	s.state = Loading{}
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	batch := s.supplier.Batch(ctx, subject, count, s.used)

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return nil
	}

	s.cards = append(s.cards, batch...)
	if v.Index+1 >= len(s.cards) {
		s.logger.WarnContext(ctx, "No more flashcards available", "subject", subject.Slug())
		s.state = Completed{}
		return nil
	}

	s.state = Viewing{Index: v.Index + 1}
	return nil
}

// Previous moves back one card; it does nothing on the first card.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.state.(Viewing)
	if !ok {
		return ErrInvalidState
	}
	s.touchLocked()
	if v.Index == 0 {
		return nil
	}
	s.state = Viewing{Index: v.Index - 1}
	return nil
}

// Reset returns to subject selection and forgets the loaded cards.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Selecting{}
	s.cards = nil
	s.subject = ""
	s.epoch++
	s.touchLocked()
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cards returns a copy of the loaded cards.
func (s *Session) Cards() []domain.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.cards)
}

// LastActivity returns the time of the last user action.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

func (s *Session) touchLocked() {
	s.lastActivity = s.now()
}

// View is a point-in-time snapshot of a deck session.
type View struct {
	Status     string            `json:"status"`
	Subject    domain.Subject    `json:"subject,omitempty"`
	CardNumber int               `json:"card_number,omitempty"`
	DeckSize   int               `json:"deck_size"`
	Loaded     int               `json:"loaded"`
	Card       *domain.Flashcard `json:"card,omitempty"`
	Flipped    bool              `json:"flipped"`
	Progress   int               `json:"progress_percent"`
}

// View returns a snapshot of the session for display.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Status:   StateName(s.state),
		Subject:  s.subject,
		DeckSize: s.deckSize,
		Loaded:   len(s.cards),
	}

	switch st := s.state.(type) {
	case Viewing:
		card := s.cards[st.Index]
		v.Card = &card
		v.CardNumber = st.Index + 1
		v.Flipped = st.Flipped
		v.Progress = v.CardNumber * 100 / s.deckSize
	case Completed:
		v.Progress = 100
	case Selecting, Loading:
	}

	return v
}

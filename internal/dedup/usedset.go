package dedup

import "sync"

// UsedSet records the keys of items that have already been served.
// It is safe for concurrent use.
type UsedSet struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewUsedSet creates an empty UsedSet.
func NewUsedSet() *UsedSet {
	return &UsedSet{keys: make(map[string]struct{})}
}

var shared = NewUsedSet()

// Shared returns the process-wide used-set.
func Shared() *UsedSet {
	return shared
}

// Has reports whether key has been recorded.
func (s *UsedSet) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[key]
	return ok
}

// Add records key.
func (s *UsedSet) Add(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = struct{}{}
}

// Clear forgets every recorded key.
func (s *UsedSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.keys)
}

// Len returns the number of recorded keys.
func (s *UsedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

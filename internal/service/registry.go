package service

import (
	"sync"
	"time"
)

// idleTracker is implemented by both session kinds.
type idleTracker interface {
	LastActivity() time.Time
}

type entry[S idleTracker] struct {
	session   S
	createdAt time.Time
	release   func()
}

// registry is a concurrency-safe map of sessions keyed by ID.
type registry[S idleTracker] struct {
	mu    sync.RWMutex
	items map[string]*entry[S]
}

func newRegistry[S idleTracker]() *registry[S] {
	return &registry[S]{items: make(map[string]*entry[S])}
}

func (r *registry[S]) put(id string, e *entry[S]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id] = e
}

func (r *registry[S]) get(id string) (*entry[S], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	return e, ok
}

// remove deletes id and releases its resources.
func (r *registry[S]) remove(id string) bool {
	r.mu.Lock()
	e, ok := r.items[id]
	delete(r.items, id)
	r.mu.Unlock()

	if ok && e.release != nil {
		e.release()
	}
	return ok
}

// reap removes every session idle since before cutoff and returns the
// number removed. idleSince reports when an entry last counted as active.
func (r *registry[S]) reap(cutoff time.Time, idleSince func(*entry[S]) time.Time) int {
	r.mu.RLock()
	var expired []string
	for id, e := range r.items {
		if idleSince(e).Before(cutoff) {
			expired = append(expired, id)
		}
	}
	r.mu.RUnlock()

	removed := 0
	for _, id := range expired {
		if r.remove(id) {
			removed++
		}
	}
	return removed
}

// removeAll releases every session.
func (r *registry[S]) removeAll() {
	r.mu.Lock()
	items := r.items
	r.items = make(map[string]*entry[S])
	r.mu.Unlock()

	for _, e := range items {
		if e.release != nil {
			e.release()
		}
	}
}

func (r *registry[S]) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func lastActivity[S idleTracker](e *entry[S]) time.Time {
	return e.session.LastActivity()
}

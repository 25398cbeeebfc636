package dedup

import (
	"math/rand"
	"sync"
	"time"
)

// Picker is a source of uniform random choices shared by concurrent sessions.
type Picker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPicker creates a Picker with a deterministic seed.
func NewPicker(seed int64) *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// NewRandomPicker creates a Picker seeded from the current time.
func NewRandomPicker() *Picker {
	return NewPicker(time.Now().UnixNano())
}

func (p *Picker) intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}

// Pick chooses one item of pool whose key is not in used and records its key.
//
// When every item of pool has been used, used is cleared and an item is
// chosen uniformly from the whole pool; that pick is not recorded. The second
// result is false only when pool is empty.
func Pick[T any](p *Picker, used *UsedSet, pool []T, key func(T) string) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}

	used.mu.Lock()
	defer used.mu.Unlock()

	available := make([]T, 0, len(pool))
	for _, item := range pool {
		if _, ok := used.keys[key(item)]; !ok {
			available = append(available, item)
		}
	}

	if len(available) == 0 {
		clear(used.keys)
		return pool[p.intn(len(pool))], true
	}

	chosen := available[p.intn(len(available))]
	used.keys[key(chosen)] = struct{}{}
	return chosen, true
}

// PickN calls Pick n times. It returns nil when pool is empty.
func PickN[T any](p *Picker, used *UsedSet, pool []T, key func(T) string, n int) []T {
	if len(pool) == 0 || n <= 0 {
		return nil
	}

	out := make([]T, 0, n)
	for range n {
		item, _ := Pick(p, used, pool, key)
		out = append(out, item)
	}
	return out
}

// PickUnused chooses one item of pool whose key is not in used and records
// its key. Unlike Pick it never clears used; the second result is false when
// every item has already been served.
func PickUnused[T any](p *Picker, used *UsedSet, pool []T, key func(T) string) (T, bool) {
	var zero T

	used.mu.Lock()
	defer used.mu.Unlock()

	available := make([]T, 0, len(pool))
	for _, item := range pool {
		if _, ok := used.keys[key(item)]; !ok {
			available = append(available, item)
		}
	}

	if len(available) == 0 {
		return zero, false
	}

	chosen := available[p.intn(len(available))]
	used.keys[key(chosen)] = struct{}{}
	return chosen, true
}

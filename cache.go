package main

import (
	"github.com/dgraph-io/ristretto"
)

// A memo is a bounded cache of computed integer results, keyed by string.
// Entries may be evicted at any time, so a miss only means the value has to
// be computed again.
type memo struct {
	cache *ristretto.Cache
}

// newMemo creates a memo that holds about capacity entries.
// It must be closed to stop its background goroutines.
func newMemo(capacity int64) *memo {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        capacity * 10,
		MaxCost:            capacity,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		panic(err)
	}
	return &memo{cache: c}
}

func (m *memo) get(key string) (int, bool) {
	v, ok := m.cache.Get(key)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (m *memo) set(key string, v int) {
	m.cache.Set(key, v, 1)
}

func (m *memo) close() {
	m.cache.Close()
}

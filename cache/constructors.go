package cache

import (
	"github.com/IvanBrykalov/cachekit/policy/access"
	"github.com/IvanBrykalov/cachekit/policy/eviction"
)

// The named constructors wire the default composition for each replacement
// algorithm: hash storage, fixed capacity, and the access policy the
// algorithm conventionally pairs with (recency/frequency orders update on
// access; FIFO and RANDOM ignore reads). They panic on negative capacity;
// use New directly for an error return or a custom composition.

// NewLRU returns a least-recently-used cache holding up to capacity entries.
func NewLRU[K comparable, V any](capacity int) *Cache[K, V] {
	return mustNew(Options[K, V]{
		Capacity: capacity,
		Eviction: eviction.NewLRU[K](),
		Access:   access.NewUpdate[K](),
	})
}

// NewMRU returns a most-recently-used cache holding up to capacity entries.
func NewMRU[K comparable, V any](capacity int) *Cache[K, V] {
	return mustNew(Options[K, V]{
		Capacity: capacity,
		Eviction: eviction.NewMRU[K](),
		Access:   access.NewUpdate[K](),
	})
}

// NewFIFO returns an insertion-ordered cache holding up to capacity entries.
func NewFIFO[K comparable, V any](capacity int) *Cache[K, V] {
	return mustNew(Options[K, V]{
		Capacity: capacity,
		Eviction: eviction.NewFIFO[K](),
		Access:   access.NewNoUpdate[K](),
	})
}

// NewLFU returns a least-frequently-used cache holding up to capacity entries.
func NewLFU[K comparable, V any](capacity int) *Cache[K, V] {
	return mustNew(Options[K, V]{
		Capacity: capacity,
		Eviction: eviction.NewLFU[K](),
		Access:   access.NewUpdate[K](),
	})
}

// NewMFU returns a most-frequently-used cache holding up to capacity entries.
func NewMFU[K comparable, V any](capacity int) *Cache[K, V] {
	return mustNew(Options[K, V]{
		Capacity: capacity,
		Eviction: eviction.NewMFU[K](),
		Access:   access.NewUpdate[K](),
	})
}

// NewRandom returns a cache that evicts uniformly random entries, holding up
// to capacity entries. The victim sequence is deterministic for the default
// seed; use NewRandomSeeded (or Seed on the eviction policy) to vary it.
func NewRandom[K comparable, V any](capacity int) *Cache[K, V] {
	return mustNew(Options[K, V]{
		Capacity: capacity,
		Eviction: eviction.NewRandom[K](),
		Access:   access.NewNoUpdate[K](),
	})
}

// NewRandomSeeded is NewRandom with an explicit PRNG seed, for reproducible
// eviction sequences in tests.
func NewRandomSeeded[K comparable, V any](capacity int, seed uint64) *Cache[K, V] {
	ev := eviction.NewRandom[K]()
	ev.Seed(seed)
	return mustNew(Options[K, V]{
		Capacity: capacity,
		Eviction: ev,
		Access:   access.NewNoUpdate[K](),
	})
}

func mustNew[K comparable, V any](opt Options[K, V]) *Cache[K, V] {
	c, err := New(opt)
	if err != nil {
		panic(err)
	}
	return c
}

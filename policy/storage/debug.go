package storage

import "github.com/IvanBrykalov/cachekit/policy"

// Debug wraps another storage and counts operations, hits, and misses.
// Find and Contains count toward the hit ratio; mutations only bump the
// operation counter.
type Debug[K comparable, V any] struct {
	inner policy.Storage[K, V]

	ops    uint64
	hits   uint64
	misses uint64
}

// NewDebug wraps the given storage; a nil inner defaults to hash storage.
func NewDebug[K comparable, V any](inner policy.Storage[K, V]) *Debug[K, V] {
	if inner == nil {
		inner = NewHash[K, V]()
	}
	return &Debug[K, V]{inner: inner}
}

// Insert stores k→v and reports whether k was new.
func (s *Debug[K, V]) Insert(k K, v V) bool {
	s.ops++
	return s.inner.Insert(k, v)
}

// Find returns the value for k, counting the lookup as a hit or miss.
func (s *Debug[K, V]) Find(k K) (V, bool) {
	s.ops++
	v, ok := s.inner.Find(k)
	s.countLookup(ok)
	return v, ok
}

// Erase removes k and reports whether it was present.
func (s *Debug[K, V]) Erase(k K) bool {
	s.ops++
	return s.inner.Erase(k)
}

// Contains reports presence, counting the probe as a hit or miss.
func (s *Debug[K, V]) Contains(k K) bool {
	s.ops++
	ok := s.inner.Contains(k)
	s.countLookup(ok)
	return ok
}

// Len reports the number of resident entries.
func (s *Debug[K, V]) Len() int { return s.inner.Len() }

// Clear drops all entries. Statistics survive; call ResetStats to zero them.
func (s *Debug[K, V]) Clear() {
	s.ops++
	s.inner.Clear()
}

// OperationCount returns the total number of operations observed.
func (s *Debug[K, V]) OperationCount() uint64 { return s.ops }

// HitCount returns the number of successful lookups.
func (s *Debug[K, V]) HitCount() uint64 { return s.hits }

// MissCount returns the number of failed lookups.
func (s *Debug[K, V]) MissCount() uint64 { return s.misses }

// HitRatio returns hits/(hits+misses), or 0 before any lookup.
func (s *Debug[K, V]) HitRatio() float64 {
	total := s.hits + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.hits) / float64(total)
}

// ResetStats zeroes all counters.
func (s *Debug[K, V]) ResetStats() {
	s.ops, s.hits, s.misses = 0, 0, 0
}

func (s *Debug[K, V]) countLookup(hit bool) {
	if hit {
		s.hits++
	} else {
		s.misses++
	}
}

var _ policy.Storage[string, int] = (*Debug[string, int])(nil)

package storage

import "github.com/IvanBrykalov/cachekit/policy"

// Compact is a hash storage that gives memory back after churn. Go maps
// never shrink their bucket array on delete, so Compact tracks the high-water
// entry count and rebuilds the map once residency falls below a quarter of
// it. Rebuilds are O(n) but amortize to O(1) per erase.
type Compact[K comparable, V any] struct {
	m         map[K]V
	highWater int
}

// NewCompact returns an empty compact storage.
func NewCompact[K comparable, V any]() *Compact[K, V] {
	return &Compact[K, V]{m: make(map[K]V)}
}

// Insert stores k→v and reports whether k was new.
func (s *Compact[K, V]) Insert(k K, v V) bool {
	_, existed := s.m[k]
	s.m[k] = v
	if n := len(s.m); n > s.highWater {
		s.highWater = n
	}
	return !existed
}

// Find returns the value for k and a presence flag.
func (s *Compact[K, V]) Find(k K) (V, bool) {
	v, ok := s.m[k]
	return v, ok
}

// Erase removes k, rebuilding the map when it has become sparse.
func (s *Compact[K, V]) Erase(k K) bool {
	if _, ok := s.m[k]; !ok {
		return false
	}
	delete(s.m, k)
	if n := len(s.m); n > 0 && n*4 < s.highWater {
		fresh := make(map[K]V, n)
		for key, val := range s.m {
			fresh[key] = val
		}
		s.m = fresh
		s.highWater = n
	}
	return true
}

// Contains reports presence without side effects.
func (s *Compact[K, V]) Contains(k K) bool {
	_, ok := s.m[k]
	return ok
}

// Len reports the number of resident entries.
func (s *Compact[K, V]) Len() int { return len(s.m) }

// Clear drops all entries and releases the bucket array.
func (s *Compact[K, V]) Clear() {
	s.m = make(map[K]V)
	s.highWater = 0
}

var _ policy.Storage[string, int] = (*Compact[string, int])(nil)

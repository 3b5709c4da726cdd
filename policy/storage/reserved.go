package storage

import "github.com/IvanBrykalov/cachekit/policy"

// Reserved is a hash storage pre-sized at construction so a cache that fills
// to a known capacity avoids incremental map growth. Clear reallocates with
// the same hint rather than reusing the emptied map.
type Reserved[K comparable, V any] struct {
	m    map[K]V
	hint int
}

// NewReserved returns a hash storage pre-sized for n entries.
func NewReserved[K comparable, V any](n int) *Reserved[K, V] {
	if n < 0 {
		n = 0
	}
	return &Reserved[K, V]{m: make(map[K]V, n), hint: n}
}

// SetReservedCapacity changes the size hint used on the next Clear.
func (s *Reserved[K, V]) SetReservedCapacity(n int) {
	if n < 0 {
		n = 0
	}
	s.hint = n
}

// ReservedCapacity returns the current size hint.
func (s *Reserved[K, V]) ReservedCapacity() int { return s.hint }

// Insert stores k→v and reports whether k was new.
func (s *Reserved[K, V]) Insert(k K, v V) bool {
	_, existed := s.m[k]
	s.m[k] = v
	return !existed
}

// Find returns the value for k and a presence flag.
func (s *Reserved[K, V]) Find(k K) (V, bool) {
	v, ok := s.m[k]
	return v, ok
}

// Erase removes k and reports whether it was present.
func (s *Reserved[K, V]) Erase(k K) bool {
	if _, ok := s.m[k]; !ok {
		return false
	}
	delete(s.m, k)
	return true
}

// Contains reports presence without side effects.
func (s *Reserved[K, V]) Contains(k K) bool {
	_, ok := s.m[k]
	return ok
}

// Len reports the number of resident entries.
func (s *Reserved[K, V]) Len() int { return len(s.m) }

// Clear drops all entries and re-reserves the configured hint.
func (s *Reserved[K, V]) Clear() {
	s.m = make(map[K]V, s.hint)
}

var _ policy.Storage[string, int] = (*Reserved[string, int])(nil)

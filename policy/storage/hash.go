// Package storage implements the primary key→value stores a cache can be
// composed with. Storage takes no part in replacement decisions; all
// ordering lives in the eviction policy.
package storage

import "github.com/IvanBrykalov/cachekit/policy"

// Hash is the default storage: a plain Go map, O(1) expected per operation.
type Hash[K comparable, V any] struct {
	m map[K]V
}

// NewHash returns an empty hash storage.
func NewHash[K comparable, V any]() *Hash[K, V] {
	return &Hash[K, V]{m: make(map[K]V)}
}

// Insert stores k→v and reports whether k was new.
func (s *Hash[K, V]) Insert(k K, v V) bool {
	_, existed := s.m[k]
	s.m[k] = v
	return !existed
}

// Find returns the value for k and a presence flag.
func (s *Hash[K, V]) Find(k K) (V, bool) {
	v, ok := s.m[k]
	return v, ok
}

// Erase removes k and reports whether it was present.
func (s *Hash[K, V]) Erase(k K) bool {
	if _, ok := s.m[k]; !ok {
		return false
	}
	delete(s.m, k)
	return true
}

// Contains reports presence without side effects.
func (s *Hash[K, V]) Contains(k K) bool {
	_, ok := s.m[k]
	return ok
}

// Len reports the number of resident entries.
func (s *Hash[K, V]) Len() int { return len(s.m) }

// Clear drops all entries.
func (s *Hash[K, V]) Clear() { clear(s.m) }

var _ policy.Storage[string, int] = (*Hash[string, int])(nil)

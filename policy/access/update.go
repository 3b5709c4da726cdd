// Package access implements the read-interception policies: they decide
// whether a cache hit also counts as an "access" event for the eviction
// policy. Recency- and frequency-ordered caches pair with Update;
// insertion-ordered and random caches pair with NoUpdate.
package access

import "github.com/IvanBrykalov/cachekit/policy"

// Update forwards every hit to the eviction policy. Default for LRU, MRU,
// LFU, and MFU.
type Update[K comparable] struct{}

// NewUpdate returns the always-update policy.
func NewUpdate[K comparable]() Update[K] { return Update[K]{} }

// OnAccess always reports that the hit should update eviction order.
func (Update[K]) OnAccess(K, policy.Eviction[K]) bool { return true }

// OnMiss records nothing; the miss still counts as recorded.
func (Update[K]) OnMiss(K) bool { return true }

// NoUpdate never forwards hits to the eviction policy. Default for FIFO and
// RANDOM, whose ordering ignores reads anyway; also useful to observe any
// cache without disturbing it.
type NoUpdate[K comparable] struct{}

// NewNoUpdate returns the never-update policy.
func NewNoUpdate[K comparable]() NoUpdate[K] { return NoUpdate[K]{} }

// OnAccess always reports that the hit should leave eviction order alone.
func (NoUpdate[K]) OnAccess(K, policy.Eviction[K]) bool { return false }

// OnMiss records nothing; the miss still counts as recorded.
func (NoUpdate[K]) OnMiss(K) bool { return true }

var (
	_ policy.Access[string] = Update[string]{}
	_ policy.Access[string] = NoUpdate[string]{}
)

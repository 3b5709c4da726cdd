package eviction

import "github.com/IvanBrykalov/cachekit/policy"

// LFU evicts the least frequently used key. Every key carries a counter that
// starts at 1 on insert and increments on access and overwrite; among keys
// sharing the lowest counter, the one that reached it longest ago goes first.
type LFU[K comparable] struct {
	c freqChain[K]
}

// NewLFU returns an empty LFU policy.
func NewLFU[K comparable]() *LFU[K] {
	return &LFU[K]{c: newFreqChain[K]()}
}

// OnAccess bumps k's frequency counter.
func (p *LFU[K]) OnAccess(k K) { p.c.promote(k) }

// OnInsert registers k at frequency 1.
func (p *LFU[K]) OnInsert(k K) { p.c.insert(k) }

// OnUpdate counts an overwrite as an access.
func (p *LFU[K]) OnUpdate(k K) { p.c.promote(k) }

// SelectVictim returns the head of the lowest-frequency bucket.
func (p *LFU[K]) SelectVictim() (K, bool) { return p.c.coldest() }

// RemoveKey drops k's counter and bucket slot.
func (p *LFU[K]) RemoveKey(k K) { p.c.remove(k) }

// Frequency reports k's current counter, for diagnostics and tests.
func (p *LFU[K]) Frequency(k K) (uint64, bool) { return p.c.frequency(k) }

// Len reports the number of tracked keys.
func (p *LFU[K]) Len() int { return p.c.len() }

// Clear drops all metadata.
func (p *LFU[K]) Clear() { p.c.clear() }

var _ policy.Eviction[string] = (*LFU[string])(nil)

package eviction

import "github.com/IvanBrykalov/cachekit/policy"

// MFU mirrors LFU but selects its victim from the highest-frequency bucket:
// the keys touched most often are dropped first. Useful when hot keys are
// cheap to recompute and cold keys are the expensive ones.
type MFU[K comparable] struct {
	c freqChain[K]
}

// NewMFU returns an empty MFU policy.
func NewMFU[K comparable]() *MFU[K] {
	return &MFU[K]{c: newFreqChain[K]()}
}

// OnAccess bumps k's frequency counter.
func (p *MFU[K]) OnAccess(k K) { p.c.promote(k) }

// OnInsert registers k at frequency 1.
func (p *MFU[K]) OnInsert(k K) { p.c.insert(k) }

// OnUpdate counts an overwrite as an access.
func (p *MFU[K]) OnUpdate(k K) { p.c.promote(k) }

// SelectVictim returns the head of the highest-frequency bucket.
func (p *MFU[K]) SelectVictim() (K, bool) { return p.c.hottest() }

// RemoveKey drops k's counter and bucket slot.
func (p *MFU[K]) RemoveKey(k K) { p.c.remove(k) }

// Frequency reports k's current counter, for diagnostics and tests.
func (p *MFU[K]) Frequency(k K) (uint64, bool) { return p.c.frequency(k) }

// Len reports the number of tracked keys.
func (p *MFU[K]) Len() int { return p.c.len() }

// Clear drops all metadata.
func (p *MFU[K]) Clear() { p.c.clear() }

var _ policy.Eviction[string] = (*MFU[string])(nil)

package eviction

import (
	"github.com/IvanBrykalov/cachekit/internal/xrand"
	"github.com/IvanBrykalov/cachekit/policy"
)

// Random evicts a uniformly random resident key. A dense key slice plus a
// key→index map allow swap-and-pop removal, so all operations are O(1) worst
// case. The policy owns its generator; two Random instances never share
// random state.
type Random[K comparable] struct {
	keys  []K
	index map[K]int
	rng   *xrand.Source
}

// NewRandom returns an empty Random policy with the default seed. Call Seed
// for reproducible victim sequences in tests.
func NewRandom[K comparable]() *Random[K] {
	return &Random[K]{
		index: make(map[K]int),
		rng:   xrand.New(),
	}
}

// Seed resets the policy's generator.
func (p *Random[K]) Seed(seed uint64) { p.rng.Seed(seed) }

// OnAccess is a no-op; reads carry no signal here.
func (p *Random[K]) OnAccess(K) {}

// OnInsert appends the key and records its slot.
func (p *Random[K]) OnInsert(k K) {
	p.index[k] = len(p.keys)
	p.keys = append(p.keys, k)
}

// OnUpdate is a no-op.
func (p *Random[K]) OnUpdate(K) {}

// SelectVictim draws a uniform index and returns that key without removing
// it; the façade follows up with RemoveKey.
func (p *Random[K]) SelectVictim() (K, bool) {
	if len(p.keys) == 0 {
		var zero K
		return zero, false
	}
	return p.keys[p.rng.Intn(len(p.keys))], true
}

// RemoveKey swaps the tail key into k's slot and pops the tail.
func (p *Random[K]) RemoveKey(k K) {
	i, ok := p.index[k]
	if !ok {
		return
	}
	last := len(p.keys) - 1
	if i != last {
		moved := p.keys[last]
		p.keys[i] = moved
		p.index[moved] = i
	}
	p.keys = p.keys[:last]
	delete(p.index, k)
}

// Len reports the number of tracked keys.
func (p *Random[K]) Len() int { return len(p.keys) }

// Clear drops all metadata. The generator state is kept.
func (p *Random[K]) Clear() {
	p.keys = p.keys[:0]
	clear(p.index)
}

var _ policy.Eviction[string] = (*Random[string])(nil)

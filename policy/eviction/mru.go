package eviction

import (
	"container/list"

	"github.com/IvanBrykalov/cachekit/policy"
)

// MRU shares the LRU structure but evicts from the opposite end: the victim
// is the most recently touched key. Because accesses move keys to the front,
// a freshly read key immediately becomes the next candidate.
type MRU[K comparable] struct {
	order *list.List
	items map[K]*list.Element
}

// NewMRU returns an empty MRU policy.
func NewMRU[K comparable]() *MRU[K] {
	return &MRU[K]{
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

// OnAccess promotes k to the front of the recency list.
func (p *MRU[K]) OnAccess(k K) {
	if el, ok := p.items[k]; ok {
		p.order.MoveToFront(el)
	}
}

// OnInsert places a new key at the front.
func (p *MRU[K]) OnInsert(k K) {
	p.items[k] = p.order.PushFront(k)
}

// OnUpdate treats an overwrite as a touch.
func (p *MRU[K]) OnUpdate(k K) { p.OnAccess(k) }

// SelectVictim returns the most recently used key (the front of the list).
func (p *MRU[K]) SelectVictim() (K, bool) {
	el := p.order.Front()
	if el == nil {
		var zero K
		return zero, false
	}
	return el.Value.(K), true
}

// RemoveKey erases k's list node via the index.
func (p *MRU[K]) RemoveKey(k K) {
	if el, ok := p.items[k]; ok {
		p.order.Remove(el)
		delete(p.items, k)
	}
}

// Len reports the number of tracked keys.
func (p *MRU[K]) Len() int { return p.order.Len() }

// Clear drops all metadata.
func (p *MRU[K]) Clear() {
	p.order.Init()
	clear(p.items)
}

var _ policy.Eviction[string] = (*MRU[string])(nil)

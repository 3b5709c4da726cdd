package eviction

import (
	"container/list"

	"github.com/IvanBrykalov/cachekit/policy"
)

// LRU evicts the least recently touched key. A doubly linked recency list
// (front = most recent) plus a key→element index give O(1) for every
// operation.
type LRU[K comparable] struct {
	order *list.List
	items map[K]*list.Element
}

// NewLRU returns an empty LRU policy.
func NewLRU[K comparable]() *LRU[K] {
	return &LRU[K]{
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

// OnAccess promotes k to the front of the recency list.
func (p *LRU[K]) OnAccess(k K) {
	if el, ok := p.items[k]; ok {
		p.order.MoveToFront(el)
	}
}

// OnInsert places a new key at the front.
func (p *LRU[K]) OnInsert(k K) {
	p.items[k] = p.order.PushFront(k)
}

// OnUpdate treats an overwrite as a touch.
func (p *LRU[K]) OnUpdate(k K) { p.OnAccess(k) }

// SelectVictim returns the least recently used key (the back of the list).
func (p *LRU[K]) SelectVictim() (K, bool) {
	el := p.order.Back()
	if el == nil {
		var zero K
		return zero, false
	}
	return el.Value.(K), true
}

// RemoveKey erases k's list node via the index.
func (p *LRU[K]) RemoveKey(k K) {
	if el, ok := p.items[k]; ok {
		p.order.Remove(el)
		delete(p.items, k)
	}
}

// Len reports the number of tracked keys.
func (p *LRU[K]) Len() int { return p.order.Len() }

// Clear drops all metadata.
func (p *LRU[K]) Clear() {
	p.order.Init()
	clear(p.items)
}

var _ policy.Eviction[string] = (*LRU[string])(nil)

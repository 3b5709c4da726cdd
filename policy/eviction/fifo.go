package eviction

import (
	"container/list"

	"github.com/IvanBrykalov/cachekit/policy"
)

// FIFO evicts in insertion order. Reads and overwrites never reposition a
// key. The queue is a doubly linked list with a key→element index, so
// out-of-order removal (explicit Erase on the cache) stays O(1) and Len
// always agrees with storage.
type FIFO[K comparable] struct {
	order *list.List // front = oldest insertion
	items map[K]*list.Element
}

// NewFIFO returns an empty FIFO policy.
func NewFIFO[K comparable]() *FIFO[K] {
	return &FIFO[K]{
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

// OnAccess is a no-op; insertion order is fixed.
func (p *FIFO[K]) OnAccess(K) {}

// OnInsert appends the key to the queue.
func (p *FIFO[K]) OnInsert(k K) {
	p.items[k] = p.order.PushBack(k)
}

// OnUpdate is a no-op; an overwrite keeps the original insertion slot.
func (p *FIFO[K]) OnUpdate(K) {}

// SelectVictim returns the oldest inserted key.
func (p *FIFO[K]) SelectVictim() (K, bool) {
	el := p.order.Front()
	if el == nil {
		var zero K
		return zero, false
	}
	return el.Value.(K), true
}

// RemoveKey unlinks k from the queue.
func (p *FIFO[K]) RemoveKey(k K) {
	if el, ok := p.items[k]; ok {
		p.order.Remove(el)
		delete(p.items, k)
	}
}

// Len reports the number of tracked keys.
func (p *FIFO[K]) Len() int { return p.order.Len() }

// Clear drops all metadata.
func (p *FIFO[K]) Clear() {
	p.order.Init()
	clear(p.items)
}

var _ policy.Eviction[string] = (*FIFO[string])(nil)

// Package capacity implements the sizing disciplines a cache can be composed
// with: fixed, dynamic, soft, and memory-budgeted. A capacity policy never
// touches entries itself; it only tells the cache when the eviction loop must
// fire and how many victims to drain.
package capacity

import (
	"errors"

	"github.com/IvanBrykalov/cachekit/policy"
)

// ErrInvalidCapacity is returned for configurations that violate a policy's
// preconditions: negative sizes, min > max, growth factor below 1, shrink
// factor outside (0, 1], or tolerance outside [0, 1].
var ErrInvalidCapacity = errors.New("capacity: invalid configuration")

// Fixed is the hard entry-count limit: at n resident entries, every insert
// first evicts. Capacity 0 is legal and admits nothing.
type Fixed struct {
	n int
}

// NewFixed returns a fixed policy with limit n.
func NewFixed(n int) (*Fixed, error) {
	if n < 0 {
		return nil, ErrInvalidCapacity
	}
	return &Fixed{n: n}, nil
}

// Capacity returns the limit.
func (p *Fixed) Capacity() int { return p.n }

// SetCapacity replaces the limit.
func (p *Fixed) SetCapacity(n int) error {
	if n < 0 {
		return ErrInvalidCapacity
	}
	p.n = n
	return nil
}

// NeedsEviction reports whether the cache is at or over the limit.
func (p *Fixed) NeedsEviction(size int) bool { return size >= p.n }

// EvictionCount returns how many victims make room for one insert.
func (p *Fixed) EvictionCount(size int) int {
	if size >= p.n {
		return size - p.n + 1
	}
	return 0
}

var _ policy.Capacity = (*Fixed)(nil)

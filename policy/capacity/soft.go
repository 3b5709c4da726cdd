package capacity

import "github.com/IvanBrykalov/cachekit/policy"

// DefaultOverageTolerance is the fraction of the target a Soft policy may
// temporarily overshoot.
const DefaultOverageTolerance = 0.2

// Soft tolerates bursts: the cache may overshoot the target up to
// ⌊target·(1+tolerance)⌋ entries. Inserts only force eviction at that hard
// maximum, and then drain all the way back to the target instead of evicting
// the bare minimum.
type Soft struct {
	target    int
	hardMax   int
	tolerance float64
}

// NewSoft returns a soft policy with the given target and tolerance ∈ [0, 1].
func NewSoft(target int, tolerance float64) (*Soft, error) {
	if target < 0 || tolerance < 0 || tolerance > 1 {
		return nil, ErrInvalidCapacity
	}
	p := &Soft{target: target, tolerance: tolerance}
	p.hardMax = hardLimit(target, tolerance)
	return p, nil
}

// Capacity returns the target (not the hard maximum).
func (p *Soft) Capacity() int { return p.target }

// SetCapacity replaces the target; the hard maximum follows.
func (p *Soft) SetCapacity(n int) error {
	if n < 0 {
		return ErrInvalidCapacity
	}
	p.target = n
	p.hardMax = hardLimit(n, p.tolerance)
	return nil
}

// NeedsEviction reports whether the cache reached the hard maximum.
func (p *Soft) NeedsEviction(size int) bool { return size >= p.hardMax }

// EvictionCount drains back to the target once the hard maximum is hit, and
// returns 1 while the size floats between the target and the hard maximum.
// The cache façade only asks for it when NeedsEviction is true, so through
// the façade only the hard-maximum drain occurs.
func (p *Soft) EvictionCount(size int) int {
	switch {
	case size >= p.hardMax:
		return size - p.target + 1
	case size > p.target:
		return 1
	default:
		return 0
	}
}

// SetOverageTolerance replaces the tolerance and recomputes the hard maximum.
func (p *Soft) SetOverageTolerance(tolerance float64) error {
	if tolerance < 0 || tolerance > 1 {
		return ErrInvalidCapacity
	}
	p.tolerance = tolerance
	p.hardMax = hardLimit(p.target, tolerance)
	return nil
}

// OverageTolerance returns the configured tolerance.
func (p *Soft) OverageTolerance() float64 { return p.tolerance }

// MaxCapacity returns the hard maximum ⌊target·(1+tolerance)⌋.
func (p *Soft) MaxCapacity() int { return p.hardMax }

// IsOverTarget reports whether the cache floats above its target.
func (p *Soft) IsOverTarget(size int) bool { return size > p.target }

func hardLimit(target int, tolerance float64) int {
	return int(float64(target) * (1 + tolerance))
}

var _ policy.Capacity = (*Soft)(nil)

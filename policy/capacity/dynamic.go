package capacity

import "github.com/IvanBrykalov/cachekit/policy"

// Defaults for NewDynamic when callers pass DynamicConfig zero values.
const (
	DefaultMinCapacity        = 32
	DefaultMaxCapacity        = 4096
	DefaultGrowthFactor       = 1.5
	DefaultShrinkFactor       = 0.75
	DefaultAdjustmentInterval = 100

	highUtilization = 0.9
	lowUtilization  = 0.5
)

// DynamicConfig collects the knobs of a Dynamic policy. Zero fields take the
// package defaults.
type DynamicConfig struct {
	Base               int
	Min                int
	Max                int
	GrowthFactor       float64
	ShrinkFactor       float64
	AdjustmentInterval int
}

// Dynamic adapts its limit to observed utilization: a size above 90% of the
// current limit grows it, below 50% shrinks it, always inside [min, max] and
// never below the current size. Adjustment is considered every
// AdjustmentInterval calls to ConsiderAdjustment, using only the size passed
// to that call.
type Dynamic struct {
	base     int
	current  int
	min      int
	max      int
	growth   float64
	shrink   float64
	interval int
	counter  int
}

// NewDynamic validates cfg and returns the policy. Preconditions:
// min ≤ base ≤ max, growth ≥ 1, 0 < shrink ≤ 1, interval ≥ 1.
func NewDynamic(cfg DynamicConfig) (*Dynamic, error) {
	if cfg.Min == 0 {
		cfg.Min = DefaultMinCapacity
	}
	if cfg.Max == 0 {
		cfg.Max = DefaultMaxCapacity
	}
	if cfg.GrowthFactor == 0 {
		cfg.GrowthFactor = DefaultGrowthFactor
	}
	if cfg.ShrinkFactor == 0 {
		cfg.ShrinkFactor = DefaultShrinkFactor
	}
	if cfg.AdjustmentInterval == 0 {
		cfg.AdjustmentInterval = DefaultAdjustmentInterval
	}
	if cfg.Base == 0 {
		cfg.Base = cfg.Min
	}

	switch {
	case cfg.Base < 0 || cfg.Min < 0,
		cfg.Min > cfg.Base || cfg.Base > cfg.Max,
		cfg.GrowthFactor < 1,
		cfg.ShrinkFactor <= 0 || cfg.ShrinkFactor > 1,
		cfg.AdjustmentInterval < 1:
		return nil, ErrInvalidCapacity
	}

	return &Dynamic{
		base:     cfg.Base,
		current:  cfg.Base,
		min:      cfg.Min,
		max:      cfg.Max,
		growth:   cfg.GrowthFactor,
		shrink:   cfg.ShrinkFactor,
		interval: cfg.AdjustmentInterval,
	}, nil
}

// Capacity returns the current (possibly adjusted) limit.
func (p *Dynamic) Capacity() int { return p.current }

// SetCapacity replaces the base limit; the effective limit is clamped to the
// configured bounds.
func (p *Dynamic) SetCapacity(n int) error {
	if n < 0 {
		return ErrInvalidCapacity
	}
	p.base = n
	p.current = clamp(n, p.min, p.max)
	return nil
}

// NeedsEviction reports whether the cache is at or over the current limit.
func (p *Dynamic) NeedsEviction(size int) bool { return size >= p.current }

// EvictionCount returns how many victims make room for one insert.
func (p *Dynamic) EvictionCount(size int) int {
	if size >= p.current {
		return size - p.current + 1
	}
	return 0
}

// ConsiderAdjustment counts a use of the cache and, every interval calls,
// grows or shrinks the limit based on utilization. Shrinking never goes
// below the current size, so it never forces evictions by itself.
func (p *Dynamic) ConsiderAdjustment(size int) {
	p.counter++
	if p.counter < p.interval {
		return
	}
	p.counter = 0

	utilization := float64(size) / float64(p.current)
	switch {
	case utilization > highUtilization && p.current < p.max:
		p.current = min(int(float64(p.current)*p.growth), p.max)
	case utilization < lowUtilization && p.current > p.min:
		p.current = max(int(float64(p.current)*p.shrink), p.min, size)
	}
}

// SetBounds replaces the [min, max] window and re-clamps the current limit.
func (p *Dynamic) SetBounds(minCap, maxCap int) error {
	if minCap < 1 || minCap > maxCap {
		return ErrInvalidCapacity
	}
	p.min = minCap
	p.max = maxCap
	p.current = clamp(p.current, minCap, maxCap)
	return nil
}

// SetGrowthParameters replaces the growth and shrink factors.
func (p *Dynamic) SetGrowthParameters(growth, shrink float64) error {
	if growth < 1 || shrink <= 0 || shrink > 1 {
		return ErrInvalidCapacity
	}
	p.growth = growth
	p.shrink = shrink
	return nil
}

// BaseCapacity returns the configured base limit.
func (p *Dynamic) BaseCapacity() int { return p.base }

// MinCapacity returns the lower bound.
func (p *Dynamic) MinCapacity() int { return p.min }

// MaxCapacity returns the upper bound.
func (p *Dynamic) MaxCapacity() int { return p.max }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ policy.Capacity = (*Dynamic)(nil)

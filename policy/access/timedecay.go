package access

import "github.com/IvanBrykalov/cachekit/policy"

// DefaultDecayInterval is the number of access-policy calls between sweeps.
const DefaultDecayInterval = 100

// TimeDecay stamps every hit and miss on a logical clock and remembers each
// key's last hit. Every decayInterval calls it sweeps the map and drops
// entries older than twice the interval. Hits always update eviction order;
// the recency map is an ancillary signal for diagnostics or policies that
// want to inspect it.
type TimeDecay[K comparable] struct {
	lastAccess    map[K]uint64
	clock         uint64
	decayInterval uint64
}

// NewTimeDecay returns a time-decay policy; interval < 1 falls back to
// DefaultDecayInterval.
func NewTimeDecay[K comparable](interval uint64) *TimeDecay[K] {
	if interval < 1 {
		interval = DefaultDecayInterval
	}
	return &TimeDecay[K]{
		lastAccess:    make(map[K]uint64),
		decayInterval: interval,
	}
}

// OnAccess stamps k, sweeps if the interval elapsed, and always reports that
// the hit should update eviction order.
func (p *TimeDecay[K]) OnAccess(k K, _ policy.Eviction[K]) bool {
	p.clock++
	p.lastAccess[k] = p.clock
	if p.clock%p.decayInterval == 0 {
		p.sweep()
	}
	return true
}

// OnMiss advances the logical clock without recording the key, and sweeps if
// the interval elapsed.
func (p *TimeDecay[K]) OnMiss(K) bool {
	p.clock++
	if p.clock%p.decayInterval == 0 {
		p.sweep()
	}
	return true
}

// SetDecayInterval changes the sweep cadence.
func (p *TimeDecay[K]) SetDecayInterval(interval uint64) {
	if interval < 1 {
		interval = 1
	}
	p.decayInterval = interval
}

// DecayInterval returns the configured sweep cadence.
func (p *TimeDecay[K]) DecayInterval() uint64 { return p.decayInterval }

// Clock returns the current logical time.
func (p *TimeDecay[K]) Clock() uint64 { return p.clock }

// LastAccess returns the logical time of k's most recent hit, or 0 if the
// key was never hit or its stamp has decayed away.
func (p *TimeDecay[K]) LastAccess(k K) uint64 { return p.lastAccess[k] }

// sweep drops stamps older than two full intervals.
func (p *TimeDecay[K]) sweep() {
	if p.clock <= p.decayInterval*2 {
		return
	}
	cutoff := p.clock - p.decayInterval*2
	for k, t := range p.lastAccess {
		if t < cutoff {
			delete(p.lastAccess, k)
		}
	}
}

var _ policy.Access[string] = (*TimeDecay[string])(nil)

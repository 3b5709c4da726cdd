package access

import "github.com/IvanBrykalov/cachekit/policy"

// DefaultThreshold is the hit count at which a key starts updating eviction
// order.
const DefaultThreshold = 2

// Threshold promotes a key in the eviction order only after it has been hit
// a configured number of times. One-shot scans therefore cannot displace the
// working set. Counters only ever grow until ClearCounts drops them; they are
// not trimmed when keys leave the cache.
type Threshold[K comparable] struct {
	counts    map[K]uint64
	threshold uint64
}

// NewThreshold returns a threshold policy; n < 1 falls back to
// DefaultThreshold.
func NewThreshold[K comparable](n uint64) *Threshold[K] {
	if n < 1 {
		n = DefaultThreshold
	}
	return &Threshold[K]{
		counts:    make(map[K]uint64),
		threshold: n,
	}
}

// OnAccess bumps k's counter and reports whether it reached the threshold.
func (p *Threshold[K]) OnAccess(k K, _ policy.Eviction[K]) bool {
	p.counts[k]++
	return p.counts[k] >= p.threshold
}

// OnMiss leaves the hit counters alone; only hits count toward the
// threshold.
func (p *Threshold[K]) OnMiss(K) bool { return true }

// SetThreshold changes the promotion threshold for future hits.
func (p *Threshold[K]) SetThreshold(n uint64) {
	if n < 1 {
		n = 1
	}
	p.threshold = n
}

// ThresholdValue returns the configured threshold.
func (p *Threshold[K]) ThresholdValue() uint64 { return p.threshold }

// AccessCount returns the number of hits recorded for k.
func (p *Threshold[K]) AccessCount(k K) uint64 { return p.counts[k] }

// ClearCounts drops all hit counters.
func (p *Threshold[K]) ClearCounts() { clear(p.counts) }

var _ policy.Access[string] = (*Threshold[string])(nil)

package cache

import "github.com/IvanBrykalov/cachekit/policy"

// Options configures the cache composition. Zero values are safe;
// sane defaults are applied in New():
//   - nil Eviction        => LRU
//   - nil Storage         => hash storage
//   - nil Access          => update-on-access
//   - nil CapacityPolicy  => fixed capacity of Options.Capacity entries
//   - nil Metrics         => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry limit handed to the default fixed capacity
	// policy. Ignored when CapacityPolicy is set. Capacity 0 is legal and
	// disables caching: Put succeeds but stores nothing.
	Capacity int

	// Eviction selects the replacement algorithm (LRU/MRU/FIFO/LFU/MFU/RANDOM
	// from the policy/eviction package, or a custom implementation).
	Eviction policy.Eviction[K]

	// Storage selects the primary map (hash/reserved/compact/debug from the
	// policy/storage package, or a custom implementation).
	Storage policy.Storage[K, V]

	// Access decides whether reads update eviction order.
	Access policy.Access[K]

	// CapacityPolicy selects the sizing discipline (fixed/dynamic/soft/memory
	// from the policy/capacity package, or a custom implementation).
	CapacityPolicy policy.Capacity

	// Observability
	// OnEvict is called for every evicted entry; keep callbacks lightweight.
	OnEvict func(k K, v V, reason EvictReason)
	Metrics Metrics
}

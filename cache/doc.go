// Package cache provides a bounded, generic, in-process key/value cache
// assembled from four pluggable policies: eviction (LRU, MRU, FIFO, LFU,
// MFU, RANDOM), storage, access, and capacity.
//
// Design
//
//   - Composition: a Cache is a thin orchestrator over one policy of each
//     kind. The policy contracts live in the policy package; implementations
//     live in policy/eviction, policy/storage, policy/access, and
//     policy/capacity. Invalid compositions fail to compile — every slot is
//     a typed interface.
//
//   - Complexity: every public operation is O(1) expected time (a map access
//     plus constant list adjustments). That includes the LFU/MFU frequency
//     promotion, which relinks adjacent buckets of a frequency chain rather
//     than searching a sorted map.
//
//   - Concurrency: none. A Cache is single-threaded by contract; operations
//     run to completion on the calling goroutine and the cache never spawns
//     one of its own. Callers who need sharing wrap the cache in a mutex.
//     Disjoint instances are fully independent.
//
//   - Errors: Get reports a miss through its second result. Put returns
//     ErrInconsistentPolicy only when a broken custom policy selects a
//     victim storage does not hold. Capacity misconfiguration surfaces as
//     capacity.ErrInvalidCapacity at the configuration call site. The cache
//     itself never logs and never panics on data paths.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug the metrics/prom adapter to
//     export Prometheus series. Options.OnEvict observes individual
//     evictions.
//
// Basic usage
//
//	// An LRU cache holding up to 10k entries.
//	c := cache.NewLRU[string, []byte](10_000)
//	_ = c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Erase("a")
//
// Explicit composition
//
//	// LFU eviction, pre-sized storage, threshold-gated promotion,
//	// soft capacity with 30% overage tolerance.
//	soft, _ := capacity.NewSoft(1000, 0.3)
//	c, err := cache.New[int, string](cache.Options[int, string]{
//	    Eviction:       eviction.NewLFU[int](),
//	    Storage:        storage.NewReserved[int, string](1300),
//	    Access:         access.NewThreshold[int](3),
//	    CapacityPolicy: soft,
//	})
//
// Deterministic RANDOM eviction
//
//	c := cache.NewRandomSeeded[int, int](64, 42)
//	// identical op sequences now produce identical eviction sequences
//
// Exporting metrics (Prometheus adapter)
//
//	m := prom.New(nil, "myapp", "cache", nil) // implements cache.Metrics
//	c, _ := cache.New[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
package cache

package cache

import (
	"github.com/IvanBrykalov/cachekit/policy"
	"github.com/IvanBrykalov/cachekit/policy/access"
	"github.com/IvanBrykalov/cachekit/policy/capacity"
	"github.com/IvanBrykalov/cachekit/policy/eviction"
	"github.com/IvanBrykalov/cachekit/policy/storage"
)

// Cache is a bounded in-memory KV store composed of four policies: eviction,
// storage, access, and capacity. A single instance is NOT safe for concurrent
// use; wrap it in your own mutex, or give each goroutine its own instance.
//
// Use via pointer only. Copying a Cache value does not copy its contents: the
// copy shares the same policy instances, so a mutation through either copy
// changes both.
type Cache[K comparable, V any] struct {
	eviction policy.Eviction[K]
	storage  policy.Storage[K, V]
	access   policy.Access[K]
	capacity policy.Capacity

	metrics Metrics
	onEvict func(K, V, EvictReason)
}

// New composes a cache from the provided Options, applying defaults for nil
// policy slots (LRU + hash storage + update-on-access + fixed capacity).
// Returns capacity.ErrInvalidCapacity when Options.Capacity is negative.
func New[K comparable, V any](opt Options[K, V]) (*Cache[K, V], error) {
	if opt.Eviction == nil {
		opt.Eviction = eviction.NewLRU[K]()
	}
	if opt.Storage == nil {
		opt.Storage = storage.NewHash[K, V]()
	}
	if opt.Access == nil {
		opt.Access = access.NewUpdate[K]()
	}
	if opt.CapacityPolicy == nil {
		fixed, err := capacity.NewFixed(opt.Capacity)
		if err != nil {
			return nil, err
		}
		opt.CapacityPolicy = fixed
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	return &Cache[K, V]{
		eviction: opt.Eviction,
		storage:  opt.Storage,
		access:   opt.Access,
		capacity: opt.CapacityPolicy,
		metrics:  opt.Metrics,
		onEvict:  opt.OnEvict,
	}, nil
}

// Put inserts or updates k→v.
//
// Insert path: victims are drained first (per the capacity policy), then the
// entry lands in storage, then the eviction policy learns about it. When no
// amount of eviction can make room (capacity 0), Put stores nothing and
// returns nil — the same no-op semantics for every algorithm.
//
// Update path: the value is overwritten in place and the eviction policy is
// told via OnUpdate; size never changes.
func (c *Cache[K, V]) Put(k K, v V) error {
	if c.storage.Contains(k) {
		c.storage.Insert(k, v)
		c.eviction.OnUpdate(k)
		return nil
	}

	if c.capacity.NeedsEviction(c.storage.Len()) {
		if err := c.evict(c.capacity.EvictionCount(c.storage.Len()), EvictCapacity); err != nil {
			return err
		}
		if c.capacity.NeedsEviction(c.storage.Len()) {
			// Nothing left to evict and still no room.
			return nil
		}
	}

	c.storage.Insert(k, v)
	c.eviction.OnInsert(k)
	c.metrics.Size(c.storage.Len())
	return nil
}

// Get returns the value for k and a presence flag. On hit, the access policy
// decides whether the read promotes the key in the eviction order.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	v, ok := c.storage.Find(k)
	if !ok {
		c.access.OnMiss(k)
		c.metrics.Miss()
		var zero V
		return zero, false
	}
	if c.access.OnAccess(k, c.eviction) {
		c.eviction.OnAccess(k)
	}
	c.metrics.Hit()
	return v, true
}

// Contains reports presence without touching eviction order or counters.
func (c *Cache[K, V]) Contains(k K) bool { return c.storage.Contains(k) }

// Erase removes k if present and reports whether it was. An explicit Erase
// is not an eviction: neither Metrics.Evict nor OnEvict fires.
func (c *Cache[K, V]) Erase(k K) bool {
	if !c.storage.Erase(k) {
		return false
	}
	c.eviction.RemoveKey(k)
	c.metrics.Size(c.storage.Len())
	return true
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return c.storage.Len() }

// Empty reports whether the cache holds no entries.
func (c *Cache[K, V]) Empty() bool { return c.storage.Len() == 0 }

// Capacity returns the capacity policy's effective entry limit.
func (c *Cache[K, V]) Capacity() int { return c.capacity.Capacity() }

// SetCapacity reconfigures the capacity policy, then drains victims until
// the policy no longer demands eviction. Rejects invalid values with the
// policy's error (capacity.ErrInvalidCapacity for the provided policies).
func (c *Cache[K, V]) SetCapacity(n int) error {
	if err := c.capacity.SetCapacity(n); err != nil {
		return err
	}
	for c.capacity.NeedsEviction(c.storage.Len()) && c.storage.Len() > 0 {
		if err := c.evict(c.capacity.EvictionCount(c.storage.Len()), EvictResize); err != nil {
			return err
		}
	}
	return nil
}

// Clear drops every entry and resets eviction metadata.
func (c *Cache[K, V]) Clear() {
	c.storage.Clear()
	c.eviction.Clear()
	c.metrics.Size(0)
}

// EvictionPolicy returns the composed eviction policy, for configuration
// (e.g. seeding a Random policy) and diagnostics.
func (c *Cache[K, V]) EvictionPolicy() policy.Eviction[K] { return c.eviction }

// StoragePolicy returns the composed storage policy (e.g. to read Debug
// storage statistics).
func (c *Cache[K, V]) StoragePolicy() policy.Storage[K, V] { return c.storage }

// AccessPolicy returns the composed access policy.
func (c *Cache[K, V]) AccessPolicy() policy.Access[K] { return c.access }

// CapacityPolicy returns the composed capacity policy (e.g. to call
// ConsiderAdjustment on a Dynamic policy).
func (c *Cache[K, V]) CapacityPolicy() policy.Capacity { return c.capacity }

// evict removes up to count victims. An empty eviction policy ends the loop
// early; a victim unknown to storage is a broken policy composition and
// surfaces as ErrInconsistentPolicy with the cache left self-consistent
// (already-evicted victims stay evicted).
func (c *Cache[K, V]) evict(count int, reason EvictReason) error {
	for i := 0; i < count && c.storage.Len() > 0; i++ {
		k, ok := c.eviction.SelectVictim()
		if !ok {
			break
		}
		v, found := c.storage.Find(k)
		if !found {
			return ErrInconsistentPolicy
		}
		c.storage.Erase(k)
		c.eviction.RemoveKey(k)
		c.metrics.Evict(reason)
		if c.onEvict != nil {
			c.onEvict(k, v, reason)
		}
	}
	c.metrics.Size(c.storage.Len())
	return nil
}

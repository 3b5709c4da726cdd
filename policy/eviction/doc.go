// Package eviction implements the replacement algorithms a cache can be
// composed with: LRU, MRU, FIFO, LFU, MFU, and RANDOM. Each type satisfies
// policy.Eviction and keeps its own metadata only; the stored values live in
// the storage policy.
//
// Complexity: every operation on every policy here is O(1), including the
// LFU/MFU frequency promotion (the buckets form a doubly linked chain rather
// than a sorted map).
package eviction

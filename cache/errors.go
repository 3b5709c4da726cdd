package cache

import "errors"

// ErrInconsistentPolicy reports that the eviction policy selected a victim
// that storage does not hold. It indicates a bug in a policy implementation:
// the provided policies never produce it, because the façade keeps storage
// and eviction metadata in lockstep. The failed Put inserts nothing.
var ErrInconsistentPolicy = errors.New("cache: eviction policy selected a key storage does not hold")

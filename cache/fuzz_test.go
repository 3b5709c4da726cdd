//go:build go1.18

package cache

import (
	"strings"
	"testing"
)

// Fuzz basic Put/Get/Erase semantics under arbitrary string inputs.
// Guards against panics and ensures core invariants hold.
// NOTE: We cap key/value lengths to avoid pathological memory usage
// during fuzzing (this does not weaken the invariants we check).
func FuzzCache_PutGetErase(f *testing.F) {
	// Seed corpus: empty, ASCII, Unicode, long strings.
	f.Add("", "")
	f.Add("a", "1")
	f.Add("b", "2")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		// Cap lengths to keep memory bounded during fuzzing.
		const limit = 1 << 12 // 4096
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c := NewLRU[string, string](16)

		// Put -> Get must return the same value.
		if err := c.Put(k, v); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, ok := c.Get(k)
		if !ok || got != v {
			t.Fatalf("after Put/Get: want %q, got %q ok=%v", v, got, ok)
		}

		// Overwrite must replace the value without growing the cache.
		if err := c.Put(k, v+"!"); err != nil {
			t.Fatalf("Put overwrite: %v", err)
		}
		if got2, ok := c.Get(k); !ok || got2 != v+"!" {
			t.Fatalf("after overwrite: want %q, got %q ok=%v", v+"!", got2, ok)
		}
		if c.Len() != 1 {
			t.Fatalf("overwrite must keep len 1, got %d", c.Len())
		}

		// Erase must delete and report true once.
		if !c.Erase(k) {
			t.Fatalf("Erase must return true")
		}
		if c.Erase(k) {
			t.Fatalf("second Erase must return false")
		}
		if _, ok := c.Get(k); ok {
			t.Fatalf("key must be absent after Erase")
		}

		// After removal, Put should succeed again and metadata must agree.
		if err := c.Put(k, v); err != nil {
			t.Fatalf("Put after Erase: %v", err)
		}
		if c.EvictionPolicy().Len() != c.Len() {
			t.Fatalf("eviction tracks %d keys, storage holds %d",
				c.EvictionPolicy().Len(), c.Len())
		}
	})
}

package cache

import (
	"math/rand"
	"strconv"
	"testing"
)

// benchmarkMix exercises a read/write mix against a warm cache on a single
// goroutine (the cache is single-threaded by contract). String keys include
// strconv/concat costs and often allocate, which is fine for an end-to-end
// benchmark.
func benchmarkMix(b *testing.B, build func(capacity int) *Cache[string, string], readsPct int) {
	c := build(100_000)

	// Preload half the capacity to get a realistic hit-rate.
	for i := 0; i < 50_000; i++ {
		k := "k:" + strconv.Itoa(i)
		_ = c.Put(k, "v")
	}

	// Report per-op allocations for a rough idea where costs go.
	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1 // hot keyspace (power of two for fast &-mask)

	for i := 0; i < b.N; i++ {
		k := "k:" + strconv.Itoa(i&keyMask)
		if r.Intn(100) < readsPct {
			c.Get(k)
		} else {
			_ = c.Put(k, "v")
		}
	}
}

func BenchmarkLRU_90r10w(b *testing.B)  { benchmarkMix(b, NewLRU[string, string], 90) }
func BenchmarkLRU_50r50w(b *testing.B)  { benchmarkMix(b, NewLRU[string, string], 50) }
func BenchmarkFIFO_90r10w(b *testing.B) { benchmarkMix(b, NewFIFO[string, string], 90) }
func BenchmarkLFU_90r10w(b *testing.B)  { benchmarkMix(b, NewLFU[string, string], 90) }
func BenchmarkMFU_90r10w(b *testing.B)  { benchmarkMix(b, NewMFU[string, string], 90) }
func BenchmarkRandom_90r10w(b *testing.B) {
	benchmarkMix(b, func(n int) *Cache[string, string] {
		return NewRandomSeeded[string, string](n, 1)
	}, 90)
}

// benchmarkMixInt is the same workload but with int keys.
// This removes strconv/alloc noise and better exposes the cache hot path.
func benchmarkMixInt(b *testing.B, readsPct int) {
	c := NewLRU[int, int](100_000)

	for i := 0; i < 50_000; i++ {
		_ = c.Put(i, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1

	for i := 0; i < b.N; i++ {
		k := i & keyMask
		if r.Intn(100) < readsPct {
			c.Get(k)
		} else {
			_ = c.Put(k, 1)
		}
	}
}

func BenchmarkLRU_IntKeys_90r10w(b *testing.B) { benchmarkMixInt(b, 90) }
func BenchmarkLRU_IntKeys_50r50w(b *testing.B) { benchmarkMixInt(b, 50) }

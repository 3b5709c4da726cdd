// Command cachebench runs a synthetic workload against every eviction
// algorithm and prints a comparison table. Each algorithm gets its own cache
// instance and its own goroutine; a single cache is never shared (the cache
// is single-threaded by contract). Optionally serves Prometheus metrics.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/cachekit/cache"
	pmet "github.com/IvanBrykalov/cachekit/metrics/prom"
)

var algorithms = []string{"lru", "mru", "fifo", "lfu", "mfu", "random"}

type result struct {
	algo     string
	ops      int
	hits     uint64
	misses   uint64
	elapsed  time.Duration
	resident int
}

func main() {
	var (
		capacity = flag.Int("cap", 10_000, "cache capacity (entries)")
		ops      = flag.Int("ops", 1_000_000, "operations per algorithm")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys  = flag.Int("keys", 100_000, "keyspace size")
		zipfS = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed  = flag.Int64("seed", 1, "random seed (same seed => same workload)")

		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
	)
	flag.Parse()

	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	results := make([]result, len(algorithms))
	var g errgroup.Group
	for i, algo := range algorithms {
		i, algo := i, algo
		g.Go(func() error {
			r, err := runWorkload(algo, *capacity, *ops, *readPct, *keys, *zipfS, *zipfV, *seed, *metricsAddr != "")
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("cap=%d ops=%d reads=%d%% keys=%d zipf_s=%.2f seed=%d\n\n",
		*capacity, *ops, *readPct, *keys, *zipfS, *seed)
	fmt.Printf("%-8s %12s %12s %10s %10s %12s\n",
		"policy", "hits", "misses", "hit-rate", "resident", "ops/s")
	for _, r := range results {
		hitRate := 0.0
		if total := r.hits + r.misses; total > 0 {
			hitRate = float64(r.hits) / float64(total) * 100
		}
		fmt.Printf("%-8s %12d %12d %9.2f%% %10d %12.0f\n",
			r.algo, r.hits, r.misses, hitRate, r.resident,
			float64(r.ops)/r.elapsed.Seconds())
	}
}

// runWorkload drives one algorithm with a Zipf-distributed read/write mix.
// The workload stream is derived from the shared seed, so every algorithm
// sees the same key sequence.
func runWorkload(algo string, capacity, ops, readPct, keys int, zipfS, zipfV float64, seed int64, withMetrics bool) (result, error) {
	var m cache.Metrics
	if withMetrics {
		m = pmet.New(nil, "cachekit", "bench", prometheus.Labels{"policy": algo})
	}
	c, err := build(algo, capacity, seed, m)
	if err != nil {
		return result{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	zipf := rand.NewZipf(rng, zipfS, zipfV, uint64(keys-1))

	var hits, misses uint64
	start := time.Now()
	for i := 0; i < ops; i++ {
		k := "k:" + strconv.FormatUint(zipf.Uint64(), 10)
		if int(rng.Int31n(100)) < readPct {
			if _, ok := c.Get(k); ok {
				hits++
			} else {
				misses++
			}
		} else {
			if err := c.Put(k, "v"); err != nil {
				return result{}, fmt.Errorf("%s: put: %w", algo, err)
			}
		}
	}

	return result{
		algo:     algo,
		ops:      ops,
		hits:     hits,
		misses:   misses,
		elapsed:  time.Since(start),
		resident: c.Len(),
	}, nil
}

func build(algo string, capacity int, seed int64, m cache.Metrics) (*cache.Cache[string, string], error) {
	var c *cache.Cache[string, string]
	switch algo {
	case "lru":
		c = cache.NewLRU[string, string](capacity)
	case "mru":
		c = cache.NewMRU[string, string](capacity)
	case "fifo":
		c = cache.NewFIFO[string, string](capacity)
	case "lfu":
		c = cache.NewLFU[string, string](capacity)
	case "mfu":
		c = cache.NewMFU[string, string](capacity)
	case "random":
		c = cache.NewRandomSeeded[string, string](capacity, uint64(seed))
	default:
		return nil, fmt.Errorf("unknown policy: %q", algo)
	}
	if m == nil {
		return c, nil
	}
	// Rebuild with metrics attached; the named constructors stay simple.
	return cache.New(cache.Options[string, string]{
		Capacity:       capacity,
		Eviction:       c.EvictionPolicy(),
		Access:         c.AccessPolicy(),
		CapacityPolicy: c.CapacityPolicy(),
		Metrics:        m,
	})
}

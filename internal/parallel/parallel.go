// Package parallel splits independent loop iterations across worker
// goroutines. The native backend uses it to fan out the row blocks of
// large matrix products.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how For partitions its iteration range.
type Config struct {
	Enabled  bool // parallel execution on/off
	Workers  int  // goroutines to fan out to
	MinIters int  // below this many iterations, run sequentially
}

// DefaultConfig sizes the worker pool to the CPU count. Single-CPU
// machines get the sequential path.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:  n > 1,
		Workers:  n,
		MinIters: 2,
	}
}

// For runs f(i) for every i in [0, n). Iterations must be independent:
// no two calls may write the same memory. Small ranges and disabled
// configs run inline on the calling goroutine.
func For(n int, cfg Config, f func(i int)) {
	if !cfg.Enabled || n < cfg.MinIters || cfg.Workers < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + cfg.Workers - 1) / cfg.Workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

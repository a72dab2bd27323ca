// Package parallel fans CPU kernel loops out over goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a loop is split.
type Config struct {
	Enabled      bool // Whether to use more than one goroutine.
	NumWorkers   int  // Upper bound on goroutines per loop.
	MinChunkSize int  // Minimum iterations per goroutine.
}

// DefaultConfig splits across all CPUs with chunks of at least 8 iterations.
// Kernel iterations here are whole output planes or matrix rows, so small chunks
// already amortize the goroutine cost.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 8,
	}
}

// Serial returns a config that always runs on the calling goroutine.
func Serial() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// Range calls f(start, end) over disjoint chunks covering [0, n).
// Chunks run concurrently when cfg allows it; f must only write state owned by its chunk.
func Range(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For executes f(i) for every i in [0, n).
func For(n int, f func(i int), cfg Config) {
	Range(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForBatch iterates the batch×channel grid common to convolution kernels.
func ForBatch(batch, channels int, f func(b, c int), cfg Config) {
	For(batch*channels, func(k int) {
		f(k/channels, k%channels)
	}, cfg)
}

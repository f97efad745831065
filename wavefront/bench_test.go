package wavefront_test

import (
	"context"
	"testing"

	"github.com/BeBeatrice/Parallel-Computing/generator"
	"github.com/BeBeatrice/Parallel-Computing/wavefront"
)

// benchmarkRunLocal runs a group of workers over two random sequences of
// length n, optionally with local threads per worker.
func benchmarkRunLocal(b *testing.B, n, workers, threads int) {
	a, c, err := generator.Pair(n, generator.WithSeed(1))
	if err != nil {
		b.Fatalf("generator failed: %v", err)
	}
	opts := []wavefront.Option{wavefront.WithLocalParallelism(threads), wavefront.WithMetrics(false)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wavefront.RunLocal(context.Background(), a, c, workers, opts...); err != nil {
			b.Fatalf("RunLocal failed: %v", err)
		}
	}
}

// BenchmarkRunLocal_1x500 is the single-worker baseline.
func BenchmarkRunLocal_1x500(b *testing.B) { benchmarkRunLocal(b, 500, 1, 1) }

// BenchmarkRunLocal_4x500 measures the collective overhead of four workers.
func BenchmarkRunLocal_4x500(b *testing.B) { benchmarkRunLocal(b, 500, 4, 1) }

// BenchmarkRunLocal_2x2000Threads combines workers with local threads.
func BenchmarkRunLocal_2x2000Threads(b *testing.B) { benchmarkRunLocal(b, 2000, 2, 4) }

// BenchmarkComputeChunk evaluates the middle diagonal of a 2000x2000 table.
func BenchmarkComputeChunk(b *testing.B) {
	a, c, err := generator.Pair(2000, generator.WithSeed(2))
	if err != nil {
		b.Fatalf("generator failed: %v", err)
	}
	h := wavefront.NewHistory(len(a))
	band := wavefront.Band(2000, len(a), len(c))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = wavefront.ComputeChunk(a, c, 2000, band, h)
	}
}

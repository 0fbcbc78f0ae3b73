package naca_test

import (
	"testing"

	"github.com/3brp/foilgen/naca"
)

// benchmarkGenerate runs the full pipeline for one code at a given total
// point count, failing on unexpected errors.
func benchmarkGenerate(b *testing.B, code string, total int) {
	opts := naca.Options{TotalPoints: total}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := naca.Generate(code, &opts); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Small benchmarks the default-sized 50-point loop.
func BenchmarkGenerate_Small(b *testing.B) {
	benchmarkGenerate(b, "2412", 50)
}

// BenchmarkGenerate_Medium benchmarks a 1k-point loop.
func BenchmarkGenerate_Medium(b *testing.B) {
	benchmarkGenerate(b, "2412", 1000)
}

// BenchmarkGenerate_Large benchmarks a 100k-point loop.
func BenchmarkGenerate_Large(b *testing.B) {
	benchmarkGenerate(b, "2412", 100000)
}

// BenchmarkCosineSpacing isolates the station generator at 1k stations.
func BenchmarkCosineSpacing(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := naca.CosineSpacing(1000); err != nil {
			b.Fatalf("CosineSpacing failed: %v", err)
		}
	}
}

package fractal_test

import (
	"testing"

	"github.com/katalvlaran/lvnoise/fractal"
)

func benchmarkFBM(b *testing.B, src fractal.Source, octaves int) {
	opts := fractal.DefaultOptions()
	opts.Octaves = octaves
	var sink float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := fractal.FBM(src, float64(i)*0.01, 0.5, opts)
		if err != nil {
			b.Fatalf("FBM failed: %v", err)
		}
		sink += v
	}
	_ = sink
}

// BenchmarkFBM_OpenSimplex3 benchmarks the default three octaves over OpenSimplex.
func BenchmarkFBM_OpenSimplex3(b *testing.B) { benchmarkFBM(b, fractal.OpenSimplex(1), 3) }

// BenchmarkFBM_OpenSimplex8 benchmarks eight octaves over OpenSimplex.
func BenchmarkFBM_OpenSimplex8(b *testing.B) { benchmarkFBM(b, fractal.OpenSimplex(1), 8) }

// BenchmarkFBM_Perlin3 benchmarks three octaves over go-perlin.
func BenchmarkFBM_Perlin3(b *testing.B) { benchmarkFBM(b, fractal.Perlin(2, 2, 1, 1), 3) }

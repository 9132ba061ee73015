package fractal

import (
	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Perlin returns a classic Perlin noise source.
//
// alpha and beta are go-perlin's internal octave weight and frequency
// factors; n is its own octave count. Use n = 1 to let FBM do all the
// layering. The source is deterministic for a given seed.
func Perlin(alpha, beta float64, n int32, seed int64) Source {
	return perlinSource{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Noise2D(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// OpenSimplex returns an OpenSimplex source in [-1, 1] for the given seed.
func OpenSimplex(seed int64) Source {
	return openSimplexSource{n: opensimplex.New(seed)}
}

type openSimplexSource struct {
	n opensimplex.Noise
}

func (s openSimplexSource) Noise2D(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

// Package fractal layers octaves of any 2D noise source into fractal
// Brownian motion (fBm).
//
// Each octave samples the source at a higher frequency (×Lacunarity) and a
// lower amplitude (×Persistence). The weighted sum is divided by the sum of
// amplitudes, so a source bounded by [-1,1] yields an fBm bounded by [-1,1]
// for any octave count.
//
// Sources:
//   - SourceFunc   — adapts a plain func(x, y float64) float64.
//   - Perlin       — github.com/aquilax/go-perlin.
//   - OpenSimplex  — github.com/ojrac/opensimplex-go.
//
// The simplex package feeds its own Generator through FBM.
//
//	v, err := fractal.FBM(fractal.OpenSimplex(7), x, y, fractal.DefaultOptions())
//
// Complexity: O(Octaves) source evaluations per call; no allocation.
package fractal

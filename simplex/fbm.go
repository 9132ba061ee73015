package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/fractal"
)

// Fbm returns fractal Brownian motion at (x, y): octaves samples of Noise,
// frequency doubling from 1 and amplitude multiplied by persistence from 1,
// divided by the amplitude total. The result is nominally in [-1, 1].
//
// With octaves == 1, Fbm(x, y, 1, p) == Noise(x, y) exactly.
//
// Errors:
//   - ErrInvalidOctaveCount if octaves <= 0.
//   - ErrInvalidPersistence if persistence is NaN or infinite.
//   - ErrZeroAmplitude if persistence cancels the amplitude total.
func (g *Generator) Fbm(x, y float64, octaves int, persistence float64) (float64, error) {
	opts := fractal.DefaultOptions()
	opts.Octaves = octaves
	opts.Persistence = persistence

	v, err := fractal.FBM((*tableSource)(g.tables()), x, y, opts)
	if err != nil {
		return 0, fmt.Errorf("Fbm: %w", err)
	}

	return v, nil
}

// FbmDefault is Fbm with DefaultOctaves and DefaultPersistence; it cannot fail.
func (g *Generator) FbmDefault(x, y float64) float64 {
	v, _ := g.Fbm(x, y, DefaultOctaves, DefaultPersistence)
	return v
}

// ScaledFbm remaps Fbm into [min, max] with MapNoise.
func (g *Generator) ScaledFbm(x, y, min, max float64, octaves int, persistence float64) (float64, error) {
	v, err := g.Fbm(x, y, octaves, persistence)
	if err != nil {
		return 0, fmt.Errorf("ScaledFbm: %w", err)
	}

	return MapNoise(v, min, max), nil
}

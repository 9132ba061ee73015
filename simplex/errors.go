package simplex

import "github.com/katalvlaran/lvnoise/fractal"

// Sentinels returned by the fractal helpers. They alias the fractal
// package's values, so errors.Is works against either name.
var (
	// ErrInvalidOctaveCount indicates octaves <= 0 in Fbm or ScaledFbm.
	ErrInvalidOctaveCount = fractal.ErrInvalidOctaveCount

	// ErrZeroAmplitude indicates that persistence made the amplitude
	// total exactly zero, so no normalized value exists.
	ErrZeroAmplitude = fractal.ErrZeroAmplitude

	// ErrInvalidPersistence indicates a NaN or infinite persistence.
	ErrInvalidPersistence = fractal.ErrInvalidPersistence
)

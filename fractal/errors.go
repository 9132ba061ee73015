package fractal

import "errors"

var (
	// ErrInvalidOctaveCount indicates Octaves <= 0.
	ErrInvalidOctaveCount = errors.New("fractal: octave count must be positive")

	// ErrZeroAmplitude indicates the amplitudes summed to exactly zero
	// (e.g. Persistence = -1 with an even octave count), which would make
	// the normalized result NaN or ±Inf.
	ErrZeroAmplitude = errors.New("fractal: amplitude sum is zero")

	// ErrInvalidPersistence indicates a NaN or infinite Persistence.
	ErrInvalidPersistence = errors.New("fractal: persistence must be finite")

	// ErrInvalidLacunarity indicates Lacunarity <= 0 or NaN.
	ErrInvalidLacunarity = errors.New("fractal: lacunarity must be positive")

	// ErrInvalidFrequency indicates Frequency <= 0 or NaN.
	ErrInvalidFrequency = errors.New("fractal: base frequency must be positive")
)

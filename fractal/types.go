package fractal

import (
	"fmt"
	"math"
)

// Source is a continuous 2D noise function, nominally in [-1, 1].
type Source interface {
	Noise2D(x, y float64) float64
}

// SourceFunc adapts an ordinary function to Source.
type SourceFunc func(x, y float64) float64

// Noise2D calls f(x, y).
func (f SourceFunc) Noise2D(x, y float64) float64 {
	return f(x, y)
}

// Defaults used by DefaultOptions.
const (
	DefaultOctaves     = 3
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
	DefaultFrequency   = 1.0
)

// Options configures FBM.
//
// Fields:
//   - Octaves     — number of layers, must be > 0.
//   - Persistence — amplitude factor per octave; any finite value, though
//     values outside (0,1] rarely make sense.
//   - Lacunarity  — frequency factor per octave, > 0.
//   - Frequency   — frequency of the first octave, > 0.
type Options struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Frequency   float64
}

// DefaultOptions returns {Octaves: 3, Persistence: 0.5, Lacunarity: 2, Frequency: 1}.
func DefaultOptions() Options {
	return Options{
		Octaves:     DefaultOctaves,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
		Frequency:   DefaultFrequency,
	}
}

// Validate reports the first invalid field in declaration order.
func (o Options) Validate() error {
	if o.Octaves <= 0 {
		return fmt.Errorf("Validate: octaves=%d: %w", o.Octaves, ErrInvalidOctaveCount)
	}
	if math.IsNaN(o.Persistence) || math.IsInf(o.Persistence, 0) {
		return fmt.Errorf("Validate: persistence=%v: %w", o.Persistence, ErrInvalidPersistence)
	}
	if !(o.Lacunarity > 0) || math.IsInf(o.Lacunarity, 1) {
		return fmt.Errorf("Validate: lacunarity=%v: %w", o.Lacunarity, ErrInvalidLacunarity)
	}
	if !(o.Frequency > 0) || math.IsInf(o.Frequency, 1) {
		return fmt.Errorf("Validate: frequency=%v: %w", o.Frequency, ErrInvalidFrequency)
	}

	return nil
}

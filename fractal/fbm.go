// SPDX-License-Identifier: MIT
// Package: lvnoise/fractal
//
// fbm.go — octave summation.
//
// Contract:
//   • Octave k samples src at (x·f_k, y·f_k) with f_0 = Frequency and
//     f_{k+1} = f_k·Lacunarity; its weight is a_k with a_0 = 1 and
//     a_{k+1} = a_k·Persistence.
//   • Result = Σ a_k·src(...) / Σ a_k.
//   • With Octaves = 1 and Frequency = 1 the result is exactly src(x, y).
//   • The weighted sample is rounded before it is accumulated (no FMA), so
//     results match across architectures.

package fractal

import "fmt"

// FBM sums opts.Octaves samples of src and normalizes by the amplitude total.
//
// Errors:
//   - ErrInvalidOctaveCount, ErrInvalidPersistence, ErrInvalidLacunarity,
//     ErrInvalidFrequency from opts.Validate.
//   - ErrZeroAmplitude if the amplitudes cancel out.
//
// Complexity: O(Octaves) time, O(1) space.
func FBM(src Source, x, y float64, opts Options) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, fmt.Errorf("FBM: %w", err)
	}

	var (
		total     float64
		maxValue  float64
		amplitude = 1.0
		frequency = opts.Frequency
		i         int
	)
	for i = 0; i < opts.Octaves; i++ {
		total += float64(src.Noise2D(x*frequency, y*frequency) * amplitude)
		maxValue += amplitude
		amplitude *= opts.Persistence
		frequency *= opts.Lacunarity
	}
	if maxValue == 0 {
		return 0, fmt.Errorf("FBM: octaves=%d persistence=%v: %w",
			opts.Octaves, opts.Persistence, ErrZeroAmplitude)
	}

	return total / maxValue, nil
}

// Package simplex evaluates seeded 2D simplex noise and its fractal
// (multi-octave) composition.
//
// 🚀 What is simplex noise?
//
//	A gradient noise defined on a triangular lattice. Every point falls in
//	one triangle (simplex); each of its three corners hashes to a fixed
//	gradient and contributes a radially decaying dot product. The result is
//	continuous, roughly isotropic, and cheap: three corners instead of the
//	four a square grid needs.
//
// ✨ Key features:
//   - Generator — an independent, seedable noise instance. Reseeding swaps
//     the whole permutation table atomically; evaluation never allocates.
//   - Noise, ScaledNoise — one octave, in about [-1, 1] or remapped.
//   - Fbm, ScaledFbm — fractal Brownian motion with doubling frequency and
//     persistence-weighted amplitude, renormalized to about [-1, 1].
//   - MapNoise — the affine remap from [-1, 1] to [min, max].
//   - Package-level Init/InitWithSeed/Reseed/Noise/... for callers that want
//     one process-wide generator.
//
// ⚠️ Hidden seeding:
//
//	A zero-value Generator (including the package-level one) is Unseeded.
//	Its first Noise or Fbm call seeds it from its default seed source,
//	which is time-derived unless replaced with WithSeedSource. Use New or
//	NewWithDefaultSeed to make the seeding explicit.
//
// ⚙️ Usage:
//
//	g := simplex.New(42)
//	n := g.Noise(1.5, -0.25)                         // ≈[-1,1]
//	angle, err := g.ScaledFbm(t, 0, 0, 180, 3, 0.5)  // servo angle
//
// Performance:
//
//   - Noise: O(1), three table lookups per corner.
//   - Fbm:   O(octaves).
package simplex

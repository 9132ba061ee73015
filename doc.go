// Package lvnoise is a small, deterministic 2D simplex noise toolkit for
// procedural motion, texture and signal generation on constrained targets.
//
// What is inside:
//
//	perm/    — seeded permutation tables (PCG-driven Fisher–Yates, doubled, mod-12 companion)
//	simplex/ — the noise engine: Generator, Noise, Fbm, MapNoise and scaled variants
//	fractal/ — octave summation over any 2D source, plus Perlin and OpenSimplex adapters
//	servo/   — actuator boundary: noise-to-angle Driver, Recorder, TinyGo PWM backend
//
// Guarantees:
//
//   - Same seed, same point ⇒ bit-identical value on every platform.
//   - Reseeding swaps tables atomically; evaluation never allocates.
//   - Invalid fractal parameters return sentinel errors instead of NaN.
//
// Quick start:
//
//	g := simplex.New(42)
//	v := g.Noise(0.5, 1.25)
//	a, err := g.ScaledFbm(t, 0, 0, 180, simplex.DefaultOctaves, simplex.DefaultPersistence)
//
//	go get github.com/katalvlaran/lvnoise
package lvnoise

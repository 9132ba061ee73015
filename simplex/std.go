package simplex

// std backs the package-level functions. It starts Unseeded, so the first
// Noise or Fbm call without a prior Init seeds it from the clock.
var std Generator

// Default returns the process-wide generator used by the package-level
// functions.
func Default() *Generator { return &std }

// Init seeds the package-level generator from the clock.
func Init() { std.Init() }

// InitWithSeed seeds the package-level generator with seed.
func InitWithSeed(seed uint32) { std.InitWithSeed(seed) }

// Reseed replaces the package-level generator's tables.
func Reseed(seed uint32) { std.Reseed(seed) }

// Noise evaluates the package-level generator.
func Noise(x, y float64) float64 { return std.Noise(x, y) }

// ScaledNoise evaluates the package-level generator remapped to [min, max].
func ScaledNoise(x, y, min, max float64) float64 { return std.ScaledNoise(x, y, min, max) }

// Fbm evaluates fBm on the package-level generator.
func Fbm(x, y float64, octaves int, persistence float64) (float64, error) {
	return std.Fbm(x, y, octaves, persistence)
}

// FbmDefault evaluates fBm with default octaves and persistence.
func FbmDefault(x, y float64) float64 { return std.FbmDefault(x, y) }

// ScaledFbm evaluates fBm on the package-level generator remapped to [min, max].
func ScaledFbm(x, y, min, max float64, octaves int, persistence float64) (float64, error) {
	return std.ScaledFbm(x, y, min, max, octaves, persistence)
}

package simplex

// MapNoise maps n from [-1, 1] to [min, max]: min + (max−min)·(n+1)/2.
// Values of n outside [-1, 1] extrapolate linearly; nothing is clamped.
func MapNoise(n, min, max float64) float64 {
	return min + (max-min)*(n+1.0)/2.0
}

// ScaledNoise returns Noise(x, y) remapped into [min, max].
func (g *Generator) ScaledNoise(x, y, min, max float64) float64 {
	return MapNoise(g.Noise(x, y), min, max)
}

package simplex

import "github.com/katalvlaran/lvnoise/fractal"

// Skew and unskew factors for two dimensions.
const (
	// f2 = (√3 − 1) / 2
	f2 = 0.5 * (sqrt3 - 1.0)
	// g2 = (3 − √3) / 6
	g2 = (3.0 - sqrt3) / 6.0

	sqrt3 = 1.7320508075688772935274463415058723669428052538103806
)

const (
	// noiseScale brings the summed corner contributions to about [-1, 1].
	noiseScale = 70.0

	// falloffRadius is r² in t = r² − x² − y².
	falloffRadius = 0.5

	// latticeMask keeps lattice coordinates in 0..255.
	latticeMask = 255
)

// Fractal defaults.
const (
	DefaultOctaves     = fractal.DefaultOctaves
	DefaultPersistence = fractal.DefaultPersistence
)

// grad3 is the 3D gradient set; 2D evaluation reads the first two
// components only.
var grad3 = [12][3]int8{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

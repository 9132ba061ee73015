// SPDX-License-Identifier: MIT
// Package: lvnoise/simplex
//
// noise.go — single-octave 2D simplex evaluation.
//
// Algorithm (per point):
//  1. Skew (x, y) by F2 and floor to find the cell (i, j).
//  2. Unskew the cell origin by G2; (x0, y0) is the offset from it.
//  3. x0 > y0 selects the lower triangle (middle corner (1,0)), else the
//     upper one (middle corner (0,1)).
//  4. Offsets of the middle and far corners follow from G2.
//  5. Each corner's lattice coordinates, masked to a byte, hash through
//     Perm/PermMod12 to one of 12 gradients.
//  6. Corner contribution: t = 0.5 − x² − y²; 0 if t < 0, else t⁴·(g·(x, y)).
//  7. Sum ×70.
//
// Every product below is wrapped in float64(...). An explicit conversion
// forbids the compiler from fusing it with the following add into an FMA,
// which keeps results bit-identical across architectures.

package simplex

import (
	"math"

	"github.com/katalvlaran/lvnoise/perm"
)

// Noise returns simplex noise at (x, y), nominally in [-1, 1]. The output
// is not clamped. An Unseeded generator seeds itself first.
func (g *Generator) Noise(x, y float64) float64 {
	return noise2(g.tables(), x, y)
}

// tableSource evaluates a fixed table, so every octave of one Fbm call sees
// the same seed even if the generator is reseeded meanwhile.
type tableSource perm.Table

func (s *tableSource) Noise2D(x, y float64) float64 {
	return noise2((*perm.Table)(s), x, y)
}

func noise2(t *perm.Table, xin, yin float64) float64 {
	// 1. cell
	s := float64((xin + yin) * f2)
	i := fastFloor(xin + s)
	j := fastFloor(yin + s)

	// 2. offset from the cell origin
	u := float64(float64(i+j) * g2)
	x0 := xin - (float64(i) - u)
	y0 := yin - (float64(j) - u)

	// 3. triangle
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	// 4. remaining corners
	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	// 5. gradient indices
	ii := i & latticeMask
	jj := j & latticeMask
	gi0 := t.PermMod12[ii+int(t.Perm[jj])]
	gi1 := t.PermMod12[ii+i1+int(t.Perm[jj+j1])]
	gi2 := t.PermMod12[ii+1+int(t.Perm[jj+1])]

	// 6–7.
	n0 := corner(gi0, x0, y0)
	n1 := corner(gi1, x1, y1)
	n2 := corner(gi2, x2, y2)

	return noiseScale * (n0 + n1 + n2)
}

// corner returns t⁴·dot(grad3[gi], x, y), or 0 outside the falloff radius.
func corner(gi uint8, x, y float64) float64 {
	t := falloffRadius - float64(x*x) - float64(y*y)
	if t < 0 {
		return 0
	}
	t = float64(t * t)
	return float64(t*t) * dot(&grad3[gi], x, y)
}

func dot(g *[3]int8, x, y float64) float64 {
	return float64(float64(g[0])*x) + float64(float64(g[1])*y)
}

// fastFloor rounds toward negative infinity. Plain int(x) truncates toward
// zero, which breaks continuity for negative inputs.
func fastFloor(x float64) int {
	return int(math.Floor(x))
}

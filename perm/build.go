// SPDX-License-Identifier: MIT
// Package: lvnoise/perm
//
// build.go — seeded table construction.
//
// Determinism:
//   • The shuffle RNG is PCG (golang.org/x/exp/rand.PCGSource), a fully
//     specified generator; no environment entropy is ever read here.
//   • Draws use Uint64n, which is unbiased for every bound.

package perm

import (
	exprand "golang.org/x/exp/rand"
)

// Build returns the permutation tables for seed. Any seed is valid,
// including 0.
//
// Steps:
//  1. Copy the base table.
//  2. Fisher–Yates shuffle for i = 255..1, j uniform in [0, i].
//  3. Mirror the shuffled half into Perm[256:512].
//  4. Fill PermMod12.
//
// Complexity: O(Size) time, no heap allocation besides the RNG source.
func Build(seed uint32) Table {
	shuffled := base

	var src exprand.PCGSource
	src.Seed(uint64(seed))
	shuffleBytes(shuffled[:], exprand.New(&src))

	return expand(shuffled, seed)
}

// Identity returns the tables built from Base() without shuffling. It is the
// table classic unseeded simplex implementations use and serves as a fixed
// reference in tests.
func Identity() Table {
	return expand(base, 0)
}

// shuffleBytes performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleBytes(a []uint8, rng *exprand.Rand) {
	var (
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = int(rng.Uint64n(uint64(i + 1)))
		a[i], a[j] = a[j], a[i]
	}
}

// expand doubles half into a Table and precomputes the mod-12 companion.
func expand(half [Size]uint8, seed uint32) Table {
	var (
		t Table
		i int
	)
	t.Seed = seed
	for i = 0; i < TableLen; i++ {
		t.Perm[i] = half[i&(Size-1)]
		t.PermMod12[i] = t.Perm[i] % gradientCount
	}

	return t
}

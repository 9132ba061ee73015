// Package perm builds the seeded permutation tables that drive lattice
// hashing in the simplex noise engine.
//
// What it produces:
//
//	Table.Perm      — 512 bytes: a shuffled copy of Base(), repeated twice so
//	                  that indices up to 511 never need wrapping.
//	Table.PermMod12 — Perm[i] % 12, precomputed for gradient selection.
//
// Guarantees:
//   - Build(seed) is a pure function: the same seed yields the same tables on
//     every platform and every run (PCG from golang.org/x/exp/rand).
//   - Every half of Perm is a bijection over 0..255; values are permuted,
//     never replaced.
//   - Validate checks all invariants and reports the first violation with a
//     sentinel error (see errors.go).
//
// Complexity: Build is O(256) time and allocates nothing beyond the Table value.
//
//	t := perm.Build(42)
//	if err := t.Validate(); err != nil { ... }
package perm

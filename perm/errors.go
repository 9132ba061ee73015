// SPDX-License-Identifier: MIT
// Package: lvnoise/perm
//
// errors.go — sentinel errors reported by Table.Validate.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Validate wraps them with the offending index via %w.

package perm

import "errors"

// ErrNotPermutation indicates that Perm[0:256] repeats or misses a value.
var ErrNotPermutation = errors.New("perm: table is not a permutation of 0..255")

// ErrHalvesDiffer indicates that Perm[i] != Perm[i+256] for some i.
var ErrHalvesDiffer = errors.New("perm: upper half does not mirror lower half")

// ErrMod12Mismatch indicates that PermMod12[i] != Perm[i] % 12 for some i.
var ErrMod12Mismatch = errors.New("perm: mod-12 table out of sync")

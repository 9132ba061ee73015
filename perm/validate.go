package perm

import "fmt"

// Validate checks the Table invariants in order: bijection over the lower
// half, mirrored upper half, mod-12 companion. It returns nil for every
// Table produced by Build or Identity.
func (t *Table) Validate() error {
	var (
		seen [Size]bool
		i    int
		v    uint8
	)
	for i = 0; i < Size; i++ {
		v = t.Perm[i]
		if seen[v] {
			return fmt.Errorf("Validate: value %d repeated at index %d: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
	}
	// 256 distinct bytes over a 256-value domain cover it exactly.

	for i = 0; i < Size; i++ {
		if t.Perm[i] != t.Perm[i+Size] {
			return fmt.Errorf("Validate: Perm[%d]=%d, Perm[%d]=%d: %w",
				i, t.Perm[i], i+Size, t.Perm[i+Size], ErrHalvesDiffer)
		}
	}

	for i = 0; i < TableLen; i++ {
		if t.PermMod12[i] != t.Perm[i]%gradientCount {
			return fmt.Errorf("Validate: PermMod12[%d]=%d, want %d: %w",
				i, t.PermMod12[i], t.Perm[i]%gradientCount, ErrMod12Mismatch)
		}
	}

	return nil
}

package perm_test

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/perm"
)

// ExampleBuild shows that a seeded table always satisfies its invariants.
func ExampleBuild() {
	tbl := perm.Build(2024)
	fmt.Println("valid:", tbl.Validate() == nil)
	fmt.Println("mirrored:", tbl.Perm[17] == tbl.Perm[17+perm.Size])
	// Output:
	// valid: true
	// mirrored: true
}

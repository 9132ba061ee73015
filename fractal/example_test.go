package fractal_test

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/fractal"
)

// ExampleFBM layers a flat source: normalization leaves it unchanged.
func ExampleFBM() {
	flat := fractal.SourceFunc(func(_, _ float64) float64 { return 0.5 })

	v, err := fractal.FBM(flat, 3, 4, fractal.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.2f\n", v)

	opts := fractal.DefaultOptions()
	opts.Octaves = 0
	_, err = fractal.FBM(flat, 3, 4, opts)
	fmt.Println(err)
	// Output:
	// 0.50
	// FBM: Validate: octaves=0: fractal: octave count must be positive
}

package fasttime_test

import (
	"fmt"

	"github.com/cwbudde/algo-echogram/fasttime"
)

func ExampleShift() {
	axis := fasttime.Shift([]float64{3e-6, 4e-6, 5e-6}, 3e-6)
	fmt.Printf("%.1e %.1e %.1e\n", axis[0], axis[1], axis[2])

	// Output:
	// 0.0e+00 1.0e-06 2.0e-06
}

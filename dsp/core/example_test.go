package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-echogram/dsp/core"
)

func ExamplePowerRatioDB() {
	fmt.Printf("%.1f dB\n", core.PowerRatioDB(100, 1))
	fmt.Printf("%.1f dB\n", core.PowerRatioDB(1, 100))

	// Output:
	// 20.0 dB
	// 20.0 dB
}

func ExampleDBPowerToLinear() {
	fmt.Printf("%.0f\n", core.DBPowerToLinear(20))

	// Output:
	// 100
}

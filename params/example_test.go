package params_test

import (
	"fmt"

	"github.com/cwbudde/algo-echogram/params"
)

func ExampleExtractor_Extract() {
	res := params.Default().Extract([]params.Entry{
		{Name: "rfparams", Text: "Center Frequency: 60 MHz, chirp 52.5 to 67.5 MHz, high gain 50 dB"},
	})

	fmt.Printf("fc=%.0f f1=%.0f f2=%.0f\n", *res.Params.CenterFrequency, *res.Params.F1, *res.Params.F2)
	fmt.Println("low gain set:", res.Params.LoGain != nil)

	// Output:
	// fc=60000000 f1=52500000 f2=67500000
	// low gain set: false
}

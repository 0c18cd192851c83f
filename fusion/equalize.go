package fusion

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-echogram/dsp/core"
)

// Equalize returns a copy of the low-gain matrix scaled by 10^(offsetDB/10)
// so it shares the high-gain channel's power scale. A zero offset returns an
// exact copy.
func Equalize(low mat.Matrix, offsetDB float64) *mat.Dense {
	eq := mat.DenseCopyOf(low)
	raw := eq.RawMatrix()
	vecmath.ScaleBlockInPlace(raw.Data, core.DBPowerToLinear(offsetDB))
	return eq
}

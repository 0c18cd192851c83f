package fusion

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-echogram/dsp/core"
)

// Merge stacks rows [0, cut) of eqLow on top of rows [cut, n) of high.
// cut is clamped to [0, n].
func Merge(eqLow, high mat.Matrix, cut int) (*mat.Dense, error) {
	rows, cols, err := validateShapes(eqLow, high)
	if err != nil {
		return nil, err
	}
	cut = core.ClampInt(cut, 0, rows)

	merged := mat.NewDense(rows, cols, nil)
	buf := make([]float64, cols)
	for r := range rows {
		src := high
		if r < cut {
			src = eqLow
		}
		merged.SetRow(r, mat.Row(buf, r, src))
	}
	return merged, nil
}

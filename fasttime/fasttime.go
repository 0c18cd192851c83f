// Package fasttime calibrates the fast-time sample axis of an echogram for
// the fixed delay between pulse transmission and the start of recording.
package fasttime

import (
	"github.com/cwbudde/algo-echogram/echogram"
	"github.com/cwbudde/algo-echogram/params"
)

const op = "fasttime"

// Shift returns a new axis with delay subtracted from every sample time.
func Shift(axis []float64, delay float64) []float64 {
	out := make([]float64, len(axis))
	for i, t := range axis {
		out[i] = t - delay
	}
	return out
}

// Calibrate shifts axis by the TXDelay parameter. An unset TXDelay is a
// precondition violation; the axis is never returned unshifted in that case.
func Calibrate(axis []float64, p params.Params) ([]float64, error) {
	if p.TXDelay == nil {
		return nil, echogram.MissingField(op, params.FieldTXDelay)
	}
	return Shift(axis, *p.TXDelay), nil
}

package fusion

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-echogram/echogram"
)

const op = "fusion"

// ErrUndeterminedSplice is returned when no sampled sounding yields a splice candidate.
var ErrUndeterminedSplice = errors.New("fusion: no sounding produced a splice candidate")

func validateShapes(low, high mat.Matrix) (rows, cols int, err error) {
	lr, lc := low.Dims()
	hr, hc := high.Dims()
	if lr != hr || lc != hc {
		return 0, 0, &echogram.PreconditionError{
			Op:     op,
			Field:  "channels",
			Detail: fmt.Sprintf("low-gain is %dx%d, high-gain is %dx%d", lr, lc, hr, hc),
		}
	}
	if lr == 0 || lc == 0 {
		return 0, 0, &echogram.PreconditionError{Op: op, Field: "channels", Detail: "empty matrix"}
	}
	return lr, lc, nil
}

func validateSurface(surface []int, cols int) error {
	if len(surface) != 0 && len(surface) != cols {
		return &echogram.PreconditionError{
			Op:     op,
			Field:  "surface",
			Detail: fmt.Sprintf("%d surface rows for %d soundings", len(surface), cols),
		}
	}
	return nil
}

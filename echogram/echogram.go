// Package echogram holds the normalized echogram record produced by channel
// fusion and the precondition errors shared by the processing packages.
package echogram

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-echogram/params"
)

// ErrPrecondition is wrapped by every [PreconditionError].
var ErrPrecondition = errors.New("echogram: precondition violation")

// PreconditionError reports a required parameter that is unset or an input
// whose shape does not fit the operation.
type PreconditionError struct {
	Op     string // operation that refused to run
	Field  string // parameter or input that failed
	Detail string
}

func (e *PreconditionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Field, ErrPrecondition)
	}
	return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Field, e.Detail, ErrPrecondition)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// MissingField returns the error for a required parameter that was not extracted.
func MissingField(op, field string) error {
	return &PreconditionError{Op: op, Field: field, Detail: "required parameter is unset"}
}

// Record is one fused, time-calibrated echogram.
type Record struct {
	ID          string
	Name        string
	Params      params.Params
	Merged      *mat.Dense // fast-time rows x soundings, linear power
	Time        []float64  // calibrated fast-time axis, seconds
	SpliceIndex int
	CutRow      int
	Diagnostics []string
	CreatedAt   time.Time
}

// Dims returns the number of fast-time samples and soundings.
func (r *Record) Dims() (samples, soundings int) {
	if r.Merged == nil {
		return 0, 0
	}
	return r.Merged.Dims()
}

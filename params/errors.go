package params

import (
	"errors"
	"fmt"
)

// Errors wrapped by [Issue]. Neither aborts extraction.
var (
	ErrPatternNotFound = errors.New("params: pattern not found")
	ErrMissingEntry    = errors.New("params: attribute entry missing")
	ErrInvalidNumber   = errors.New("params: invalid number in phrase")
)

// Issue records why a field was left unset.
type Issue struct {
	Field string
	Entry string
	Err   error
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s (entry %q): %v", i.Field, i.Entry, i.Err)
}

func (i Issue) Unwrap() error {
	return i.Err
}

package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for model evaluation.
var (
	// ErrInvalidParameter indicates a configuration value outside its valid range.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrUnknownFrame indicates a reference frame name that is not recognised.
	ErrUnknownFrame = errors.New("dynamo: unknown reference frame")

	// ErrNonFinite indicates a NaN or Inf value reached an output grid.
	ErrNonFinite = errors.New("dynamo: non-finite value in grid")

	// ErrEmptyDomain indicates a sampling domain with zero or negative extent.
	ErrEmptyDomain = errors.New("dynamo: empty sampling domain")
)

// ParameterError reports which parameter was rejected and why.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

// NewParameterError builds a ParameterError for name.
func NewParameterError(name string, value float64, reason string) *ParameterError {
	return &ParameterError{Name: name, Value: value, Reason: reason}
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter.Error(), e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// CellError locates a non-finite value inside a grid.
type CellError struct {
	Row, Col int
	Value    float64
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s at row %d col %d (%v)", ErrNonFinite.Error(), e.Row, e.Col, e.Value)
}

func (e *CellError) Unwrap() error {
	return ErrNonFinite
}

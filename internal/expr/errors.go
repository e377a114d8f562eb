package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. The typed errors below unwrap to
// these.
var (
	ErrUnboundVariable   = errors.New("unbound variable")
	ErrWrongType         = errors.New("binding has wrong type")
	ErrDimensionMismatch = errors.New("jacobian dimension mismatch")
)

// UnboundVariableError reports a binding lookup miss during evaluation.
// The evaluation call is aborted in full; no partial result is returned.
type UnboundVariableError struct {
	Key Key // Variable that had no binding.
}

// Error implements the error interface.
func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %d", e.Key)
}

// Unwrap returns ErrUnboundVariable.
func (e *UnboundVariableError) Unwrap() error {
	return ErrUnboundVariable
}

// WrongTypeError reports that a variable was bound to a value of a concrete
// type other than the one the expression expects.
type WrongTypeError struct {
	Key  Key    // Variable whose binding had the wrong type.
	Have string // Concrete type found in the bindings.
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("variable %d is bound to a %s, want a different type", e.Key, e.Have)
}

// Unwrap returns ErrWrongType.
func (e *WrongTypeError) Unwrap() error {
	return ErrWrongType
}

// DimensionError reports a Jacobian whose shape is inconsistent with the
// declared tangent dimensions. It indicates a bug in a primitive function or
// a value type, and aborts the evaluation; shapes are never silently
// reshaped or truncated.
type DimensionError struct {
	Context            string // What was being checked, e.g. "local jacobian".
	Rows, Cols         int    // Observed shape.
	WantRows, WantCols int    // Required shape.
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s has shape %dx%d, want %dx%d",
		e.Context, e.Rows, e.Cols, e.WantRows, e.WantCols)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

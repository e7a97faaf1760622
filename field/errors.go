package field

import "errors"

var (
	// ErrNotInvertible is returned when a zero element or a singular
	// matrix has no multiplicative inverse.
	ErrNotInvertible = errors.New("not invertible")
	// ErrDivisionByZero is returned when dividing by the zero element.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDimensionMismatch is returned when matrix shapes are
	// incompatible with the requested operation.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrIndexOutOfRange is returned when a matrix element access is
	// out of bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

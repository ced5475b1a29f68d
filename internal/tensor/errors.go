package tensor

import (
	"errors"
	"fmt"
)

// Error kinds.
//
// ErrInvalidArgument and ErrShapeMismatch are validation errors: they are
// returned before anything is modified and the receiver stays usable.
// ErrOutOfRange marks a bounds violation and is only ever raised through a
// panic, since it means the caller computed a bad index.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrOutOfRange      = errors.New("index out of range")
)

// ShapeError describes a dimension mismatch between two operands.
type ShapeError struct {
	Op   string // Operation that rejected the operands (e.g. "Add", "SetWeights")
	Want Shape  // Shape the operation required
	Got  Shape  // Shape it received
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: want %v, got %v", e.Op, ErrShapeMismatch, e.Want, e.Got)
}

// Unwrap makes errors.Is(err, ErrShapeMismatch) hold.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// IndexError is the panic value for out-of-bounds element access.
type IndexError struct {
	Row, Col int
	Shape    Shape
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: (%d, %d) outside %v", ErrOutOfRange, e.Row, e.Col, e.Shape)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) hold.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func shapeError(op string, want, got Shape) error {
	return &ShapeError{Op: op, Want: want, Got: got}
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

package nn

import "github.com/born-ml/densenet/internal/tensor"

// Error kinds shared with the tensor package, re-exported so callers of
// nn can match with errors.Is without importing tensor.
var (
	ErrInvalidArgument = tensor.ErrInvalidArgument
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrOutOfRange      = tensor.ErrOutOfRange
)

func lengthError(op string, want, got int) error {
	return &tensor.ShapeError{Op: op, Want: tensor.Shape{want, 1}, Got: tensor.Shape{got, 1}}
}

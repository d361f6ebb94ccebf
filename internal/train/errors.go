package train

import (
	"errors"

	"github.com/born-ml/mlp/internal/tensor"
)

// Common errors.
var (
	ErrEmptyInput      = errors.New("no samples")
	ErrInvalidEpochs   = errors.New("epoch count must be >= 0")
	ErrLabelOutOfRange = errors.New("label out of range")
	ErrNilNetwork      = errors.New("nil network")

	ErrDimensionMismatch = tensor.ErrDimensionMismatch
)

package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidShape      = errors.New("invalid shape")
	ErrEmpty             = errors.New("empty vector")
)

// mismatch wraps ErrDimensionMismatch with the operation name and sizes.
func mismatch(op string, want, got int) error {
	return fmt.Errorf("%s: %w: want %d, got %d", op, ErrDimensionMismatch, want, got)
}

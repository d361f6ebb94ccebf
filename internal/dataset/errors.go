package dataset

import "errors"

// Common errors.
var (
	ErrInvalidMagic    = errors.New("invalid magic number")
	ErrInvalidHeader   = errors.New("invalid IDX header")
	ErrCountMismatch   = errors.New("image count does not match label count")
	ErrLabelOutOfRange = errors.New("label out of range")
)

package nn

import (
	"errors"

	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/tensor"
)

// Common errors.
var (
	ErrInvalidArchitecture = errors.New("invalid architecture")
	ErrCacheMismatch       = errors.New("cache does not match this network")
	ErrCacheNotReady       = errors.New("cache holds no forward pass to backpropagate")

	// Aliases of dependency errors.
	ErrDimensionMismatch   = tensor.ErrDimensionMismatch
	ErrInvalidLearningRate = optim.ErrInvalidLearningRate
)

// Package optim implements the parameter update rule used during training.
//
// The network is trained with plain per-sample stochastic gradient descent:
// every call to an update method applies one step immediately, with no
// momentum, no gradient accumulation and no per-parameter state.
package optim

import (
	"errors"

	"github.com/born-ml/mlp/internal/tensor"
)

// ErrInvalidLearningRate is returned when a learning rate is not a finite
// positive number.
var ErrInvalidLearningRate = errors.New("learning rate must be finite and > 0")

// Optimizer applies gradient updates to a layer's parameters in place.
//
// Gradients are never materialized as separate tensors: for a dense layer
// the weight gradient of row i is delta[i]*input, so implementations take
// the two factors and fold them into the update.
type Optimizer[T tensor.Float] interface {
	// UpdateRow applies w -= step(delta * x) to one weight row.
	UpdateRow(w []T, delta T, x []T)

	// UpdateBias applies b -= step(delta) to a bias vector.
	UpdateBias(b, delta []T)

	// LR returns the learning rate.
	LR() T
}

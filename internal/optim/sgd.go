package optim

import (
	"fmt"

	"github.com/born-ml/mlp/internal/tensor"
)

// SGD implements Stochastic Gradient Descent without momentum.
//
// Update rule:
//
//	param = param - lr * gradient
//
// The learning rate is fixed at construction and applied uniformly to every
// layer.
type SGD[T tensor.Float] struct {
	lr T
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig[T tensor.Float] struct {
	LR T // Learning rate (must be > 0)
}

// NewSGD creates a new SGD optimizer.
//
// Zero, negative, NaN or infinite rates return ErrInvalidLearningRate.
func NewSGD[T tensor.Float](config SGDConfig[T]) (*SGD[T], error) {
	if config.LR <= 0 || !tensor.IsFinite(config.LR) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLearningRate, config.LR)
	}
	return &SGD[T]{lr: config.LR}, nil
}

// UpdateRow applies w[j] -= lr * delta * x[j].
func (s *SGD[T]) UpdateRow(w []T, delta T, x []T) {
	if delta == 0 {
		return
	}
	tensor.Axpy(w, -s.lr*delta, x)
}

// UpdateBias applies b[i] -= lr * delta[i].
func (s *SGD[T]) UpdateBias(b, delta []T) {
	tensor.Axpy(b, -s.lr, delta)
}

// LR returns the learning rate.
func (s *SGD[T]) LR() T {
	return s.lr
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/tensor"
)

// Network is a multilayer perceptron trained with per-sample SGD.
type Network[T tensor.Float] = nn.Network[T]

// Config describes a network to construct.
type Config[T tensor.Float] = nn.Config[T]

// Cache holds the state of one forward pass.
type Cache[T tensor.Float] = nn.Cache[T]

// Module is implemented by components with trainable parameters.
type Module[T tensor.Float] = nn.Module[T]

// Parameter is a named view over trainable storage.
type Parameter[T tensor.Float] = nn.Parameter[T]

// Linear represents a fully connected (dense) layer.
type Linear[T tensor.Float] = nn.Linear[T]

// Initializer fills a weight matrix.
type Initializer[T tensor.Float] = nn.Initializer[T]

// Epsilon is added to probabilities inside CrossEntropy.
const Epsilon = nn.Epsilon

// Errors.
var (
	ErrInvalidArchitecture = nn.ErrInvalidArchitecture
	ErrInvalidLearningRate = nn.ErrInvalidLearningRate
	ErrDimensionMismatch   = nn.ErrDimensionMismatch
	ErrCacheMismatch       = nn.ErrCacheMismatch
	ErrCacheNotReady       = nn.ErrCacheNotReady
)

// New creates a network.
//
// Example:
//
//	net, err := nn.New(nn.Config[float32]{
//	    Architecture: []int{784, 128, 10},
//	    LearningRate: 0.001,
//	})
func New[T tensor.Float](cfg Config[T]) (*Network[T], error) {
	return nn.New(cfg)
}

// CountParameters returns the number of scalar parameters of m.
func CountParameters[T tensor.Float](m Module[T]) int {
	return nn.CountParameters(m)
}

// Initializers

// Uniform draws weights independently from [low, high).
func Uniform[T tensor.Float](low, high T) Initializer[T] {
	return nn.Uniform(low, high)
}

// Zeros leaves every weight at zero.
func Zeros[T tensor.Float]() Initializer[T] {
	return nn.Zeros[T]()
}

// Xavier draws weights from the Glorot uniform distribution.
func Xavier[T tensor.Float]() Initializer[T] {
	return nn.Xavier[T]()
}

// Activations and loss

// ReLU returns max(0, x).
func ReLU[T tensor.Float](x T) T {
	return nn.ReLU(x)
}

// ReLUDerivative returns 1 for x > 0 and 0 otherwise.
func ReLUDerivative[T tensor.Float](x T) T {
	return nn.ReLUDerivative(x)
}

// Softmax returns the numerically stable softmax of z.
func Softmax[T tensor.Float](z []T) []T {
	return nn.Softmax(z)
}

// CrossEntropy computes -Σ target[j] * log(output[j] + Epsilon).
func CrossEntropy[T tensor.Float](output, target []T) (T, error) {
	return nn.CrossEntropy(output, target)
}

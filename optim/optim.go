// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim exposes the SGD update rule used by the network.
package optim

import (
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/tensor"
)

// Optimizer applies in-place gradient updates to a layer.
type Optimizer[T tensor.Float] = optim.Optimizer[T]

// SGD represents plain stochastic gradient descent.
type SGD[T tensor.Float] = optim.SGD[T]

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig[T tensor.Float] = optim.SGDConfig[T]

// ErrInvalidLearningRate is returned for a zero, negative or non-finite rate.
var ErrInvalidLearningRate = optim.ErrInvalidLearningRate

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig[float64]{LR: 0.01})
func NewSGD[T tensor.Float](config SGDConfig[T]) (*SGD[T], error) {
	return optim.NewSGD(config)
}

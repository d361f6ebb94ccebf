// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs the per-sample training loop and evaluates networks.
//
// Example:
//
//	trainer, err := train.New(net, train.Config{
//	    Epochs:  3,
//	    OnEpoch: func(s train.EpochStats) { fmt.Println(s) },
//	})
//	_, err = trainer.TrainLabels(images, labels)
//	acc, err := train.Evaluate(net, testImages, testLabels, train.DefaultParallel())
package train

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/internal/tensor"
	"github.com/born-ml/mlp/internal/train"
)

// Trainer drives per-sample SGD over a dataset.
type Trainer[T tensor.Float] = train.Trainer[T]

// Config holds configuration for a Trainer.
type Config = train.Config

// EpochStats summarizes one epoch.
type EpochStats = train.EpochStats

// ParallelConfig controls evaluation fan-out.
type ParallelConfig = parallel.Config

// Errors.
var (
	ErrEmptyInput        = train.ErrEmptyInput
	ErrInvalidEpochs     = train.ErrInvalidEpochs
	ErrLabelOutOfRange   = train.ErrLabelOutOfRange
	ErrNilNetwork        = train.ErrNilNetwork
	ErrDimensionMismatch = train.ErrDimensionMismatch
)

// New creates a trainer for net.
func New[T tensor.Float](net *nn.Network[T], cfg Config) (*Trainer[T], error) {
	return train.New(net, cfg)
}

// DefaultParallel returns an evaluation config sized to the CPU count.
func DefaultParallel() ParallelConfig {
	return parallel.DefaultConfig()
}

// Sequential returns an evaluation config that uses no goroutines.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}

// Evaluate returns 100 * correct / total.
func Evaluate[T tensor.Float](net *nn.Network[T], inputs [][]T, labels []int, cfg ParallelConfig) (float64, error) {
	return train.Evaluate(net, inputs, labels, cfg)
}

// Predictions returns the predicted class of every input.
func Predictions[T tensor.Float](net *nn.Network[T], inputs [][]T, cfg ParallelConfig) ([]int, error) {
	return train.Predictions(net, inputs, cfg)
}

// Confusion returns the confusion matrix (rows: true label, cols: prediction).
func Confusion[T tensor.Float](net *nn.Network[T], inputs [][]T, labels []int, cfg ParallelConfig) (*mat.Dense, error) {
	return train.Confusion(net, inputs, labels, cfg)
}

// Accuracy returns the diagonal share of a confusion matrix, in percent.
func Accuracy(confusion mat.Matrix) float64 {
	return train.Accuracy(confusion)
}

package train

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/internal/tensor"
)

// Predictions returns the predicted class of every input.
//
// The network is only read, so chunks run concurrently when cfg enables
// it; each worker owns its forward cache. The network must not be trained
// while this runs.
func Predictions[T tensor.Float](net *nn.Network[T], inputs [][]T, cfg parallel.Config) ([]int, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	for i, input := range inputs {
		if len(input) != net.InputSize() {
			return nil, fmt.Errorf("Predictions: sample %d: %w: input has %d features, want %d",
				i, ErrDimensionMismatch, len(input), net.InputSize())
		}
	}

	preds := make([]int, len(inputs))
	var (
		mu       sync.Mutex
		firstErr error
	)
	parallel.ForChunks(len(inputs), func(start, end int) {
		cache := net.NewCache()
		for i := start; i < end; i++ {
			class, err := net.PredictWith(cache, inputs[i])
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("Predictions: sample %d: %w", i, err)
				}
				mu.Unlock()
				return
			}
			preds[i] = class
		}
	}, cfg)
	if firstErr != nil {
		return nil, firstErr
	}
	return preds, nil
}

// Evaluate returns the percentage of inputs whose predicted class equals
// the matching label: 100 * correct / total.
//
// Returns ErrEmptyInput for zero samples, ErrDimensionMismatch when the
// slices differ in length and ErrLabelOutOfRange for a label outside
// [0, OutputSize).
func Evaluate[T tensor.Float](net *nn.Network[T], inputs [][]T, labels []int, cfg parallel.Config) (float64, error) {
	preds, err := predictLabeled(net, inputs, labels, cfg)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i, p := range preds {
		if p == labels[i] {
			correct++
		}
	}
	return 100 * float64(correct) / float64(len(labels)), nil
}

// Confusion returns a classes×classes matrix whose (i, j) entry counts the
// samples with true label i predicted as class j.
func Confusion[T tensor.Float](net *nn.Network[T], inputs [][]T, labels []int, cfg parallel.Config) (*mat.Dense, error) {
	preds, err := predictLabeled(net, inputs, labels, cfg)
	if err != nil {
		return nil, err
	}
	classes := net.OutputSize()
	m := mat.NewDense(classes, classes, nil)
	for i, p := range preds {
		m.Set(labels[i], p, m.At(labels[i], p)+1)
	}
	return m, nil
}

// Accuracy returns the percentage of samples on the diagonal of a
// confusion matrix.
func Accuracy(confusion mat.Matrix) float64 {
	total := mat.Sum(confusion)
	if total == 0 {
		return 0
	}
	return 100 * mat.Trace(confusion) / total
}

func predictLabeled[T tensor.Float](net *nn.Network[T], inputs [][]T, labels []int, cfg parallel.Config) ([]int, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("Evaluate: %w", ErrEmptyInput)
	}
	if len(inputs) != len(labels) {
		return nil, fmt.Errorf("Evaluate: %w: %d inputs, %d labels",
			ErrDimensionMismatch, len(inputs), len(labels))
	}
	classes := net.OutputSize()
	for i, label := range labels {
		if label < 0 || label >= classes {
			return nil, fmt.Errorf("Evaluate: sample %d: %w: %d not in [0, %d)",
				i, ErrLabelOutOfRange, label, classes)
		}
	}
	return Predictions(net, inputs, cfg)
}

// Package train runs the training loop and evaluates trained networks.
package train

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/tensor"
)

// EpochStats summarizes one pass over the training set.
type EpochStats struct {
	Epoch    int           // 1-based epoch number
	Samples  int           // Samples presented in the epoch
	MeanLoss float64       // Mean cross-entropy over the epoch
	StdLoss  float64       // Sample standard deviation of the per-sample loss
	Duration time.Duration // Wall time spent on the epoch
}

// String formats the stats the way the CLI reports them.
func (s EpochStats) String() string {
	return fmt.Sprintf("epoch %d: loss=%.6f (±%.4f) samples=%d in %v",
		s.Epoch, s.MeanLoss, s.StdLoss, s.Samples, s.Duration.Round(time.Millisecond))
}

// Config holds configuration for a Trainer.
type Config struct {
	Epochs int // Number of passes over the data (>= 0)

	// OnEpoch, if set, is called after every epoch completes.
	OnEpoch func(EpochStats)
}

// Trainer drives per-sample SGD over a dataset.
//
// Example:
//
//	trainer, err := train.New(net, train.Config{
//	    Epochs:  3,
//	    OnEpoch: func(s train.EpochStats) { fmt.Println(s) },
//	})
//	stats, err := trainer.TrainLabels(images, labels)
type Trainer[T tensor.Float] struct {
	net *nn.Network[T]
	cfg Config
}

// New creates a trainer for net.
func New[T tensor.Float](net *nn.Network[T], cfg Config) (*Trainer[T], error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if cfg.Epochs < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEpochs, cfg.Epochs)
	}
	return &Trainer[T]{net: net, cfg: cfg}, nil
}

// Network returns the network being trained.
func (t *Trainer[T]) Network() *nn.Network[T] {
	return t.net
}

// Train runs cfg.Epochs epochs. Each epoch presents every sample in order:
// forward pass, loss accumulation, backward pass with an immediate SGD
// step.
//
// inputs and targets must have equal length and every pair must match the
// network's input and output sizes; all of this is checked before the first
// update, so a rejected call leaves the network untouched.
func (t *Trainer[T]) Train(inputs, targets [][]T) ([]EpochStats, error) {
	if err := t.validate(inputs, targets); err != nil {
		return nil, err
	}

	stats := make([]EpochStats, 0, t.cfg.Epochs)
	cache := t.net.NewCache()
	losses := make([]float64, len(inputs))

	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		start := time.Now()
		for i, input := range inputs {
			loss, err := t.net.Step(cache, input, targets[i])
			if err != nil {
				return stats, fmt.Errorf("epoch %d, sample %d: %w", epoch, i, err)
			}
			losses[i] = float64(loss)
		}

		s := EpochStats{
			Epoch:    epoch,
			Samples:  len(inputs),
			MeanLoss: stat.Mean(losses, nil),
			Duration: time.Since(start),
		}
		if len(losses) > 1 {
			s.StdLoss = stat.StdDev(losses, nil)
		}
		stats = append(stats, s)
		if t.cfg.OnEpoch != nil {
			t.cfg.OnEpoch(s)
		}
	}
	return stats, nil
}

// TrainLabels one-hot encodes integer labels and calls Train.
func (t *Trainer[T]) TrainLabels(inputs [][]T, labels []int) ([]EpochStats, error) {
	if len(inputs) != len(labels) {
		return nil, fmt.Errorf("TrainLabels: %w: %d inputs, %d labels",
			ErrDimensionMismatch, len(inputs), len(labels))
	}
	classes := t.net.OutputSize()
	targets := make([][]T, len(labels))
	for i, label := range labels {
		if label < 0 || label >= classes {
			return nil, fmt.Errorf("TrainLabels: sample %d: %w: %d not in [0, %d)",
				i, ErrLabelOutOfRange, label, classes)
		}
		targets[i] = make([]T, classes)
		targets[i][label] = 1
	}
	return t.Train(inputs, targets)
}

func (t *Trainer[T]) validate(inputs, targets [][]T) error {
	if len(inputs) != len(targets) {
		return fmt.Errorf("Train: %w: %d inputs, %d targets",
			ErrDimensionMismatch, len(inputs), len(targets))
	}
	if len(inputs) == 0 && t.cfg.Epochs > 0 {
		return fmt.Errorf("Train: %w", ErrEmptyInput)
	}
	in, out := t.net.InputSize(), t.net.OutputSize()
	for i := range inputs {
		if len(inputs[i]) != in {
			return fmt.Errorf("Train: sample %d: %w: input has %d features, want %d",
				i, ErrDimensionMismatch, len(inputs[i]), in)
		}
		if len(targets[i]) != out {
			return fmt.Errorf("Train: sample %d: %w: target has %d entries, want %d",
				i, ErrDimensionMismatch, len(targets[i]), out)
		}
	}
	return nil
}

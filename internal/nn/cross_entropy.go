package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/mlp/internal/tensor"
)

// Epsilon is added to every probability before taking its logarithm so a
// zero probability yields a large finite loss instead of +Inf.
const Epsilon = 1e-6

// CrossEntropy computes -Σ target[j] * log(output[j] + Epsilon).
//
// output is a probability distribution (the network output) and target a
// one-hot vector of the same length.
func CrossEntropy[T tensor.Float](output, target []T) (T, error) {
	if len(output) != len(target) {
		return 0, fmt.Errorf("CrossEntropy: %w: output has %d entries, target %d",
			tensor.ErrDimensionMismatch, len(output), len(target))
	}
	var loss float64
	for j, t := range target {
		if t == 0 {
			continue
		}
		loss -= float64(t) * math.Log(float64(output[j])+Epsilon)
	}
	return T(loss), nil
}

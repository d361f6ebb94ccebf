package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/mlp/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: z = W·x + b
// where:
//   - x is the input vector with length in_features
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with length out_features
//   - z is the pre-activation vector with length out_features
//
// The activation is applied by the owning Network, not by the layer.
type Linear[T tensor.Float] struct {
	inFeatures  int
	outFeatures int
	weight      *tensor.Matrix[T] // [out_features, in_features]
	bias        []T               // [out_features]
}

// NewLinear creates a new Linear layer.
//
// Weights are filled by init using rng. Biases are initialized to zeros.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//   - init: Weight initializer
//   - rng: Random source handed to init
func NewLinear[T tensor.Float](inFeatures, outFeatures int, init Initializer[T], rng *rand.Rand) (*Linear[T], error) {
	weight, err := tensor.NewMatrix[T](outFeatures, inFeatures)
	if err != nil {
		return nil, fmt.Errorf("NewLinear: %w", err)
	}
	init(weight.Data(), inFeatures, outFeatures, rng)

	return &Linear[T]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        make([]T, outFeatures),
	}, nil
}

// Forward computes z = W·x + b into z.
//
// z must have length out_features and x length in_features.
func (l *Linear[T]) Forward(z, x []T) error {
	if err := l.weight.MulVec(z, x); err != nil {
		return fmt.Errorf("Linear.Forward: %w", err)
	}
	for i, b := range l.bias {
		z[i] += b
	}
	return nil
}

// Parameters returns [weight, bias].
func (l *Linear[T]) Parameters() []*Parameter[T] {
	return []*Parameter[T]{
		NewParameter("weight", l.weight.Shape(), l.weight.Data()),
		NewParameter("bias", tensor.Shape{l.outFeatures}, l.bias),
	}
}

// Weight returns the weight matrix. Mutating it changes the layer.
func (l *Linear[T]) Weight() *tensor.Matrix[T] {
	return l.weight
}

// Bias returns the bias vector. Mutating it changes the layer.
func (l *Linear[T]) Bias() []T {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[T]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[T]) OutFeatures() int {
	return l.outFeatures
}

// Package nn implements the fully connected classifier: parameter storage,
// activations, forward propagation, backpropagation with in-place SGD
// updates, loss accounting and prediction.
//
// This package provides:
//   - Linear: dense layer holding one weight matrix and one bias vector
//   - Network: strictly layered perceptron, ReLU hidden layers, softmax output
//   - Cache: per-sample forward state consumed by Backward
//   - Activations: ReLU, ReLUDerivative, Softmax
//   - Loss: CrossEntropy
//   - Initializers: Uniform, Zeros, Xavier
//
// Everything is generic over tensor.Float, so the same code trains in
// float32 or float64.
package nn

import "github.com/born-ml/mlp/internal/tensor"

// Module is implemented by every component that owns trainable parameters.
type Module[T tensor.Float] interface {
	// Parameters returns all trainable parameters of this module.
	//
	// The returned parameters alias the module's storage: writing through
	// Parameter.Data changes the module.
	Parameters() []*Parameter[T]
}

// CountParameters returns the total number of scalar parameters of m.
func CountParameters[T tensor.Float](m Module[T]) int {
	n := 0
	for _, p := range m.Parameters() {
		n += p.NumElements()
	}
	return n
}

package nn

import (
	"github.com/born-ml/mlp/internal/tensor"
)

// Parameter is a named view over trainable storage (a weight matrix or a
// bias vector).
//
// Example:
//
//	for _, p := range net.Parameters() {
//	    fmt.Println(p.Name(), p.Shape())
//	}
type Parameter[T tensor.Float] struct {
	name  string       // Parameter name (e.g., "layers.0.weight")
	shape tensor.Shape // [out, in] for weights, [out] for biases
	data  []T          // Aliases the owning layer's storage
}

// NewParameter creates a parameter view over data.
func NewParameter[T tensor.Float](name string, shape tensor.Shape, data []T) *Parameter[T] {
	return &Parameter[T]{
		name:  name,
		shape: shape.Clone(),
		data:  data,
	}
}

// Name returns the parameter name.
func (p *Parameter[T]) Name() string {
	return p.name
}

// Shape returns the parameter shape.
func (p *Parameter[T]) Shape() tensor.Shape {
	return p.shape.Clone()
}

// Data returns the underlying storage.
func (p *Parameter[T]) Data() []T {
	return p.data
}

// NumElements returns the number of scalars in the parameter.
func (p *Parameter[T]) NumElements() int {
	return len(p.data)
}

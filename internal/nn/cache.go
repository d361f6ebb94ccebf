package nn

import (
	"github.com/born-ml/mlp/internal/tensor"
)

// Cache holds the state of one forward pass: a copy of the input and, for
// every layer, the pre-activation z and the activation a.
//
// A cache is produced by Network.Forward (or refilled by ForwardInto) and
// consumed by exactly one Network.Backward call. Reusing one cache across
// samples avoids per-sample allocation; a cache must not be shared between
// goroutines.
type Cache[T tensor.Float] struct {
	input []T
	z     [][]T
	a     [][]T
	delta [][]T // backward scratch, one error signal per layer
	ready bool  // set by a successful forward, cleared by Backward
}

// newCache allocates buffers for the given architecture.
func newCache[T tensor.Float](arch []int) *Cache[T] {
	layers := len(arch) - 1
	c := &Cache[T]{
		input: make([]T, arch[0]),
		z:     make([][]T, layers),
		a:     make([][]T, layers),
		delta: make([][]T, layers),
	}
	for l := 0; l < layers; l++ {
		n := arch[l+1]
		c.z[l] = make([]T, n)
		c.a[l] = make([]T, n)
		c.delta[l] = make([]T, n)
	}
	return c
}

// Output returns the activation of the last layer: the class distribution.
func (c *Cache[T]) Output() []T {
	return c.a[len(c.a)-1]
}

// Input returns the input recorded by the last forward pass.
func (c *Cache[T]) Input() []T {
	return c.input
}

// PreActivation returns z for layer l.
func (c *Cache[T]) PreActivation(l int) []T {
	return c.z[l]
}

// Activation returns the activation for layer l.
func (c *Cache[T]) Activation(l int) []T {
	return c.a[l]
}

// NumLayers returns the number of layers recorded in the cache.
func (c *Cache[T]) NumLayers() int {
	return len(c.z)
}

// Ready reports whether the cache holds a forward pass that has not yet
// been consumed by Backward.
func (c *Cache[T]) Ready() bool {
	return c.ready
}

// fits reports whether the cache buffers match arch.
func (c *Cache[T]) fits(arch []int) bool {
	if len(c.input) != arch[0] || len(c.z) != len(arch)-1 {
		return false
	}
	for l := range c.z {
		if len(c.z[l]) != arch[l+1] {
			return false
		}
	}
	return true
}

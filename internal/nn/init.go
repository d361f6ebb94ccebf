package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/mlp/internal/tensor"
)

// Initializer fills a freshly allocated weight matrix (row-major, fanOut
// rows of fanIn columns) using rng.
type Initializer[T tensor.Float] func(w []T, fanIn, fanOut int, rng *rand.Rand)

// Uniform draws every weight independently from [low, high).
//
// The network default is Uniform(-0.5, 0.5).
func Uniform[T tensor.Float](low, high T) Initializer[T] {
	return func(w []T, _, _ int, rng *rand.Rand) {
		if high <= low {
			for i := range w {
				w[i] = low
			}
			return
		}
		span := float64(high) - float64(low)
		for i := range w {
			v := T(float64(low) + span*rng.Float64())
			// Rounding to float32 can land exactly on high.
			for v >= high {
				v = T(float64(low) + span*rng.Float64())
			}
			w[i] = v
		}
	}
}

// Zeros leaves every weight at zero. A zero network outputs the uniform
// distribution for every input, which makes it a handy fixture.
func Zeros[T tensor.Float]() Initializer[T] {
	return func(w []T, _, _ int, _ *rand.Rand) {
		clear(w)
	}
}

// Xavier (Glorot) initialization.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
func Xavier[T tensor.Float]() Initializer[T] {
	return func(w []T, fanIn, fanOut int, rng *rand.Rand) {
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		for i := range w {
			w[i] = T((rng.Float64()*2.0 - 1.0) * bound)
		}
	}
}

package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniform_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w := make([]float64, 10000)
	Uniform(-0.5, 0.5)(w, 100, 100, rng)

	var lo, hi float64
	for _, v := range w {
		assert.GreaterOrEqual(t, v, -0.5)
		assert.Less(t, v, 0.5)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	// The whole interval is covered, not a degenerate corner of it.
	assert.Less(t, lo, -0.45)
	assert.Greater(t, hi, 0.45)
}

func TestUniform_Float32HalfOpen(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w := make([]float32, 5000)
	Uniform[float32](-0.5, 0.5)(w, 1, 1, rng)
	for _, v := range w {
		assert.Less(t, v, float32(0.5))
	}
}

func TestUniform_Deterministic(t *testing.T) {
	a := make([]float64, 16)
	b := make([]float64, 16)
	Uniform(-0.5, 0.5)(a, 4, 4, rand.New(rand.NewSource(42)))
	Uniform(-0.5, 0.5)(b, 4, 4, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestZeros(t *testing.T) {
	w := []float64{1, 2, 3}
	Zeros[float64]()(w, 3, 1, nil)
	assert.Equal(t, []float64{0, 0, 0}, w)
}

func TestXavier_Bound(t *testing.T) {
	w := make([]float64, 784*128)
	Xavier[float64]()(w, 784, 128, rand.New(rand.NewSource(1)))
	bound := math.Sqrt(6.0 / (784 + 128))
	for _, v := range w {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}
}

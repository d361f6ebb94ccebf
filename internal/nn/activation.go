package nn

import (
	"math"

	"github.com/born-ml/mlp/internal/tensor"
)

// ReLU is the Rectified Linear Unit: f(x) = max(0, x).
func ReLU[T tensor.Float](x T) T {
	if x > 0 {
		return x
	}
	return 0
}

// ReLUDerivative returns 1 for strictly positive x and 0 otherwise.
func ReLUDerivative[T tensor.Float](x T) T {
	if x > 0 {
		return 1
	}
	return 0
}

// Softmax returns a new slice holding the softmax of z.
func Softmax[T tensor.Float](z []T) []T {
	out := make([]T, len(z))
	SoftmaxInto(out, z)
	return out
}

// SoftmaxInto writes softmax(z) into dst, which must be as long as z and
// may alias it.
//
// The maximum element is subtracted before exponentiating so large logits
// cannot overflow; the result is mathematically unchanged. Every output
// entry lies in [0, 1] and the entries sum to 1 within rounding.
func SoftmaxInto[T tensor.Float](dst, z []T) {
	if len(z) == 0 {
		return
	}
	maxVal := float64(tensor.Max(z))
	var sum float64
	for i, v := range z {
		e := math.Exp(float64(v) - maxVal)
		dst[i] = T(e)
		sum += e
	}
	for i := range z {
		dst[i] = T(float64(dst[i]) / sum)
	}
}

package tensor

import "math"

// Dot returns the dot product of a and b.
func Dot[T Float](a, b []T) (T, error) {
	if len(a) != len(b) {
		return 0, mismatch("Dot", len(a), len(b))
	}
	return dot(a, b), nil
}

// dot assumes len(a) == len(b).
func dot[T Float](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Axpy computes dst += alpha*x in place. x must be at least as long as dst.
func Axpy[T Float](dst []T, alpha T, x []T) {
	x = x[:len(dst)]
	for i := range dst {
		dst[i] += alpha * x[i]
	}
}

// Apply returns a new slice with fn applied to every element of v.
func Apply[T Float](v []T, fn func(T) T) []T {
	out := make([]T, len(v))
	ApplyInto(out, v, fn)
	return out
}

// ApplyInto writes fn(src[i]) into dst[i]. dst and src may alias.
func ApplyInto[T Float](dst, src []T, fn func(T) T) {
	src = src[:len(dst)]
	for i, x := range src {
		dst[i] = fn(x)
	}
}

// Sub writes a-b into dst.
func Sub[T Float](dst, a, b []T) error {
	if len(a) != len(b) {
		return mismatch("Sub", len(a), len(b))
	}
	if len(dst) != len(a) {
		return mismatch("Sub: output", len(a), len(dst))
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
	return nil
}

// Sum returns the sum of all elements.
func Sum[T Float](v []T) T {
	var s T
	for _, x := range v {
		s += x
	}
	return s
}

// Max returns the largest element of v, or -Inf for an empty slice.
func Max[T Float](v []T) T {
	m := T(math.Inf(-1))
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}

// ArgMax returns the index of the largest element. Ties resolve to the
// lowest index. Returns -1 for an empty slice.
func ArgMax[T Float](v []T) int {
	if len(v) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

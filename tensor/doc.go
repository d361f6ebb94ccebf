// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public numeric types used by the classifier.
//
// The package defines:
//   - Float: constraint for element types (float32, float64)
//   - Matrix[T]: dense row-major matrix over one contiguous slice
//   - Vector kernels: Dot, Apply, ArgMax
//
// Example:
//
//	m, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
//	dst := make([]float64, 2)
//	err = m.MulVec(dst, []float64{1, 1}) // dst = [3, 7]
package tensor

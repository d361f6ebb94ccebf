package dataset

import "github.com/born-ml/mlp/internal/tensor"

// Synthetic creates a tiny embedded dataset of n 28×28 samples for running
// the pipeline without MNIST files.
//
// Sample i has label i%10 and shows a bright horizontal band whose vertical
// position depends on the label. These are NOT realistic digits, just
// separable patterns.
func Synthetic[T tensor.Float](n int) *Set[T] {
	set := &Set[T]{
		Images: make([][]T, n),
		Labels: make([]int, n),
		Rows:   ImageRows,
		Cols:   ImageCols,
	}
	for i := 0; i < n; i++ {
		label := i % NumClasses
		image := make([]T, ImageSize)

		startRow := label * 2 // 0, 2, 4, ..., 18
		for row := startRow; row < startRow+8 && row < ImageRows; row++ {
			for col := 5; col < 23; col++ {
				image[row*ImageCols+col] = 0.8
			}
		}
		// Vary repeated samples slightly so they are not exact duplicates.
		if shift := i / NumClasses; shift > 0 {
			image[(shift%ImageRows)*ImageCols] = 0.1
		}

		set.Images[i] = image
		set.Labels[i] = label
	}
	return set
}

package dataset

import (
	"fmt"

	"github.com/born-ml/mlp/internal/tensor"
)

// OneHot returns a vector of length classes with a single 1 at label.
func OneHot[T tensor.Float](label, classes int) ([]T, error) {
	if label < 0 || label >= classes {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrLabelOutOfRange, label, classes)
	}
	v := make([]T, classes)
	v[label] = 1
	return v, nil
}

// OneHotAll encodes every label.
func OneHotAll[T tensor.Float](labels []int, classes int) ([][]T, error) {
	out := make([][]T, len(labels))
	for i, label := range labels {
		v, err := OneHot[T](label, classes)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

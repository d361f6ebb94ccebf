package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/internal/tensor"
)

// MNIST geometry.
const (
	ImageRows  = 28
	ImageCols  = 28
	ImageSize  = ImageRows * ImageCols
	NumClasses = 10
)

// Set is a sequence of normalized images with their integer labels.
type Set[T tensor.Float] struct {
	Images [][]T // each of length Rows*Cols, values in [0, 1]
	Labels []int // parallel to Images
	Rows   int
	Cols   int
}

// Len returns the number of samples.
func (s *Set[T]) Len() int {
	return len(s.Images)
}

// OneHot encodes the labels for a classifier with the given class count.
func (s *Set[T]) OneHot(classes int) ([][]T, error) {
	return OneHotAll[T](s.Labels, classes)
}

// MNIST holds the training and test sets.
type MNIST[T tensor.Float] struct {
	Train *Set[T]
	Test  *Set[T]
}

// fileNames lists the accepted names per file, in lookup order. Both the
// hyphenated names of the original distribution and the dotted variant
// produced by some unpackers are accepted.
var fileNames = map[string][]string{
	"train-images": {"train-images-idx3-ubyte", "train-images.idx3-ubyte"},
	"train-labels": {"train-labels-idx1-ubyte", "train-labels.idx1-ubyte"},
	"test-images":  {"t10k-images-idx3-ubyte", "t10k-images.idx3-ubyte"},
	"test-labels":  {"t10k-labels-idx1-ubyte", "t10k-labels.idx1-ubyte"},
}

// LoadMNIST loads the training and test sets from the IDX files in dir.
//
// Parameters:
//   - dir: Directory containing train-images-idx3-ubyte, train-labels-idx1-ubyte,
//     t10k-images-idx3-ubyte and t10k-labels-idx1-ubyte
//   - maxSamples: Maximum number of samples per set (0 = load all)
//
// A missing file yields an error matching fs.ErrNotExist.
func LoadMNIST[T tensor.Float](dir string, maxSamples int) (*MNIST[T], error) {
	paths := make(map[string]string, len(fileNames))
	for key, names := range fileNames {
		path, err := locate(dir, names)
		if err != nil {
			return nil, err
		}
		paths[key] = path
	}

	trainSet, err := LoadSet[T](paths["train-images"], paths["train-labels"], maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load training set: %w", err)
	}
	testSet, err := LoadSet[T](paths["test-images"], paths["test-labels"], maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load test set: %w", err)
	}
	return &MNIST[T]{Train: trainSet, Test: testSet}, nil
}

// LoadSet loads one image file and its label file.
func LoadSet[T tensor.Float](imagePath, labelPath string, maxSamples int) (*Set[T], error) {
	images, err := ReadImagesFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	labels, err := ReadLabelsFile(labelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	return NewSet[T](images, labels, maxSamples)
}

// NewSet normalizes decoded images and pairs them with labels, keeping at
// most maxSamples samples (0 = all).
func NewSet[T tensor.Float](images *Images, labels []byte, maxSamples int) (*Set[T], error) {
	if images.Count() != len(labels) {
		return nil, fmt.Errorf("%w: %d images, %d labels", ErrCountMismatch, images.Count(), len(labels))
	}

	n := images.Count()
	if maxSamples > 0 && n > maxSamples {
		n = maxSamples
	}

	set := &Set[T]{
		Images: make([][]T, n),
		Labels: make([]int, n),
		Rows:   images.Rows,
		Cols:   images.Cols,
	}
	parallel.For(n, func(i int) {
		set.Images[i] = Normalize[T](images.Pixels[i])
		set.Labels[i] = int(labels[i])
	}, parallel.DefaultConfig())
	return set, nil
}

// Normalize maps pixel bytes 0-255 to [0, 1].
func Normalize[T tensor.Float](pixels []byte) []T {
	out := make([]T, len(pixels))
	for i, p := range pixels {
		out[i] = T(p) / 255
	}
	return out
}

func locate(dir string, names []string) (string, error) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%s: %w", filepath.Join(dir, names[0]), fs.ErrNotExist)
}

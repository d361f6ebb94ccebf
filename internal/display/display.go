// Package display renders images, vectors, matrices and class
// distributions as plain text for the console.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/tensor"
)

// Threshold is the intensity above which a pixel is drawn as '1'.
const Threshold = 0.5

// barWidth is the width of a full-probability bar in Distribution.
const barWidth = 40

// Image draws a rows×cols image: '1' for pixels brighter than Threshold,
// a space otherwise, each cell followed by a space. A blank line ends the
// drawing.
func Image[T tensor.Float](w io.Writer, image []T, rows, cols int) error {
	if rows <= 0 || cols <= 0 || len(image) != rows*cols {
		return fmt.Errorf("display.Image: %w: %d pixels for a %dx%d image",
			tensor.ErrDimensionMismatch, len(image), rows, cols)
	}
	bw := bufio.NewWriter(w)
	for r := 0; r < rows; r++ {
		for _, p := range image[r*cols : (r+1)*cols] {
			if p > Threshold {
				bw.WriteString("1 ")
			} else {
				bw.WriteString("  ")
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// Vector writes the entries of v separated by spaces on one line.
func Vector[T tensor.Float](w io.Writer, v []T) error {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

// Dense copies m into a gonum matrix.
func Dense[T tensor.Float](m *tensor.Matrix[T]) *mat.Dense {
	data := make([]float64, len(m.Data()))
	for i, x := range m.Data() {
		data[i] = float64(x)
	}
	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// Matrix writes m as aligned columns followed by a blank line.
func Matrix[T tensor.Float](w io.Writer, m *tensor.Matrix[T]) error {
	return Formatted(w, Dense(m))
}

// Formatted writes any gonum matrix as aligned columns followed by a blank
// line.
func Formatted(w io.Writer, m mat.Matrix) error {
	_, err := fmt.Fprintf(w, "%v\n\n", mat.Formatted(m, mat.Squeeze()))
	return err
}

// Distribution draws one bar per class, scaled to its probability, and
// marks the most probable class.
//
// Example output:
//
//	0 |                                          0.010
//	1 | ##################################       0.862 <
//	2 | ####                                     0.128
func Distribution[T tensor.Float](w io.Writer, probs []T) error {
	best := tensor.ArgMax(probs)
	bw := bufio.NewWriter(w)
	for i, p := range probs {
		n := int(float64(p)*barWidth + 0.5)
		n = min(max(n, 0), barWidth)
		fmt.Fprintf(bw, "%d | %-*s %.3f", i, barWidth, strings.Repeat("#", n), float64(p))
		if i == best {
			bw.WriteString(" <")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

package tensor

import "fmt"

// Matrix is a dense row-major matrix backed by a single contiguous slice.
//
// Row i occupies data[i*cols : (i+1)*cols]. Row returns a slice aliasing
// that storage, so kernels can walk a row without copying.
type Matrix[T Float] struct {
	rows int
	cols int
	data []T
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix[T Float](rows, cols int) (*Matrix[T], error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, err
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// FromSlice wraps data (row-major, len rows*cols) as a matrix without copying.
func FromSlice[T Float](rows, cols int, data []T) (*Matrix[T], error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, mismatch("FromSlice", rows*cols, len(data))
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows copies a nested slice into a new matrix. Every row must have the
// same length.
func FromRows[T Float](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrEmpty)
	}
	m, err := NewMatrix[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != m.cols {
			return nil, fmt.Errorf("FromRows: row %d: %w: want %d, got %d", i, ErrDimensionMismatch, m.cols, len(r))
		}
		copy(m.Row(i), r)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns {rows, cols}.
func (m *Matrix[T]) Shape() Shape { return Shape{m.rows, m.cols} }

// Data returns the underlying row-major storage.
func (m *Matrix[T]) Data() []T { return m.data }

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix[T]) Row(i int) []T {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// At returns the element at (i, j).
func (m *Matrix[T]) At(i, j int) T {
	return m.data[i*m.cols+j]
}

// Set stores v at (i, j).
func (m *Matrix[T]) Set(i, j int, v T) {
	m.data[i*m.cols+j] = v
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// ToRows copies the matrix into a freshly allocated nested slice.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i] = make([]T, m.cols)
		copy(out[i], m.Row(i))
	}
	return out
}

// Transpose returns a new cols×rows matrix.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Apply returns a new matrix with fn applied to every element.
func (m *Matrix[T]) Apply(fn func(T) T) *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: Apply(m.data, fn)}
}

// MulVec computes dst = M·x. dst must have length Rows and x length Cols.
func (m *Matrix[T]) MulVec(dst, x []T) error {
	if len(x) != m.cols {
		return mismatch("MulVec: input", m.cols, len(x))
	}
	if len(dst) != m.rows {
		return mismatch("MulVec: output", m.rows, len(dst))
	}
	for i := range dst {
		dst[i] = dot(m.Row(i), x)
	}
	return nil
}

// MulVecT computes dst = Mᵀ·x without materializing the transpose.
// dst must have length Cols and x length Rows.
func (m *Matrix[T]) MulVecT(dst, x []T) error {
	if len(x) != m.rows {
		return mismatch("MulVecT: input", m.rows, len(x))
	}
	if len(dst) != m.cols {
		return mismatch("MulVecT: output", m.cols, len(dst))
	}
	clear(dst)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		Axpy(dst, xi, m.Row(i))
	}
	return nil
}

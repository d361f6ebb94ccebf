package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix[float64](3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.True(t, m.Shape().Equal(Shape{3, 2}))
	assert.Len(t, m.Data(), 6)

	_, err = NewMatrix[float64](0, 2)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestMatrix_RowAliasesStorage(t *testing.T) {
	m, err := NewMatrix[float32](2, 3)
	require.NoError(t, err)

	m.Row(1)[2] = 7
	assert.Equal(t, float32(7), m.At(1, 2))
	assert.Equal(t, float32(7), m.Data()[5])

	// Appending to a row must not spill into the next one.
	r := append(m.Row(0), 9)
	r[0] = 1
	assert.Equal(t, float32(0), m.At(1, 0))
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, m.At(1, 1))
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToRows())

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = FromRows[float64](nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestMatrix_Transpose(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())
}

func TestMatrix_MulVec(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	dst := make([]float64, 2)
	require.NoError(t, m.MulVec(dst, []float64{1, 0, -1}))
	assert.Equal(t, []float64{-2, -2}, dst)

	assert.ErrorIs(t, m.MulVec(dst, []float64{1, 2}), ErrDimensionMismatch)
	assert.ErrorIs(t, m.MulVec(make([]float64, 3), []float64{1, 2, 3}), ErrDimensionMismatch)
}

func TestMatrix_MulVecT(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	dst := []float64{9, 9, 9}
	require.NoError(t, m.MulVecT(dst, []float64{1, 2}))
	assert.Equal(t, []float64{9, 12, 15}, dst)

	// Same result as an explicit transpose.
	want := make([]float64, 3)
	require.NoError(t, m.Transpose().MulVec(want, []float64{1, 2}))
	assert.Equal(t, want, dst)
}

func TestMatrix_ApplyAndClone(t *testing.T) {
	m, err := FromRows([][]float64{{-1, 2}})
	require.NoError(t, err)

	c := m.Clone()
	c.Set(0, 0, 5)
	assert.Equal(t, -1.0, m.At(0, 0))

	sq := m.Apply(func(x float64) float64 { return x * x })
	assert.Equal(t, []float64{1, 4}, sq.Data())
}

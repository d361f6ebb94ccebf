package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	got, err := Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 32.0, got, 1e-12)

	got32, err := Dot([]float32{0.5, -1}, []float32{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, float32(-2), got32, 1e-6)
}

func TestDot_Mismatch(t *testing.T) {
	_, err := Dot([]float64{1, 2}, []float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestApply(t *testing.T) {
	in := []float64{-1, 0, 2}
	out := Apply(in, func(x float64) float64 { return x * 2 })
	assert.Equal(t, []float64{-2, 0, 4}, out)
	assert.Equal(t, []float64{-1, 0, 2}, in, "Apply must not modify its input")
}

func TestSub(t *testing.T) {
	dst := make([]float64, 3)
	require.NoError(t, Sub(dst, []float64{1, 2, 3}, []float64{0.5, 2, 4}))
	assert.Equal(t, []float64{0.5, 0, -1}, dst)

	err := Sub(dst, []float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestArgMax(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want int
	}{
		{"single", []float64{3}, 0},
		{"last", []float64{0.1, 0.2, 0.7}, 2},
		{"tie resolves to first", []float64{0.4, 0.4, 0.2}, 0},
		{"negative values", []float64{-3, -1, -2}, 1},
		{"empty", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArgMax(tt.in))
		})
	}
}

func TestMax(t *testing.T) {
	assert.Equal(t, 5.0, Max([]float64{1, 5, -2}))
	assert.True(t, math.IsInf(Max[float64](nil), -1))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.5))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(float32(math.Inf(1))))
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, "float64", Float64.String())
}

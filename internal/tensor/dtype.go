// Package tensor provides the numeric primitives used by the network:
// a floating-point type constraint, shapes, a contiguous row-major matrix,
// and the vector kernels (dot products, elementwise application, arg-max)
// the forward and backward passes are built from.
package tensor

import "unsafe"

// Float is the constraint for supported element types.
//
// All numeric code is written once against Float and instantiated as
// float32 or float64 by the caller.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for an element type.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType of T.
func DataTypeOf[T Float]() DataType {
	var dummy T
	if unsafe.Sizeof(dummy) == 4 {
		return Float32
	}
	return Float64
}

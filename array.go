package arraytex

import (
	"fmt"
	"reflect"
)

// Number is the set of element types an [Array] can be built from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Array is an immutable, row-major numeric array. Rank 0 is a scalar, rank 1
// a vector and rank 2 a grid of rows. Higher ranks can be constructed with
// [New] but are rejected by the renderers.
type Array struct {
	shape  []int
	floats []float64
	ints   []int64  // non-nil for signed integer element kinds
	uints  []uint64 // non-nil for unsigned integer element kinds
}

// Scalar returns a rank-0 array holding v.
func Scalar[T Number](v T) Array {
	a, _ := New(nil, []T{v})
	return a
}

// Vector returns a rank-1 array holding vs.
func Vector[T Number](vs ...T) Array {
	a, _ := New([]int{len(vs)}, vs)
	return a
}

// Grid returns a rank-2 array from rows. All rows must have the same length.
func Grid[T Number](rows [][]T) (Array, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Array{}, fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrRagged, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return New([]int{len(rows), cols}, data)
}

// New returns an array of the given shape backed by data in row-major order.
// The product of shape must equal len(data); an empty shape is a scalar.
func New[T Number](shape []int, data []T) (Array, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return Array{}, fmt.Errorf("%w: negative dimension %d in %v", ErrShape, d, shape)
		}
		n *= d
	}
	if n != len(data) {
		return Array{}, fmt.Errorf("%w: shape %v holds %d values, got %d", ErrShape, shape, n, len(data))
	}

	a := Array{
		shape:  append([]int(nil), shape...),
		floats: make([]float64, len(data)),
	}
	kind := reflect.TypeFor[T]().Kind()
	signed, unsigned := isSignedKind(kind), isUnsignedKind(kind)
	switch {
	case signed:
		a.ints = make([]int64, len(data))
	case unsigned:
		a.uints = make([]uint64, len(data))
	}
	for i, v := range data {
		a.floats[i] = float64(v)
		switch {
		case signed:
			a.ints[i] = int64(v)
		case unsigned:
			a.uints[i] = uint64(v)
		}
	}
	return a, nil
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// Rank returns the number of dimensions.
func (a Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the array's dimensions.
func (a Array) Shape() []int {
	out := make([]int, len(a.shape))
	copy(out, a.shape)
	return out
}

// Len returns the total number of values.
func (a Array) Len() int { return len(a.floats) }

// IsInt reports whether the array holds an integer element kind.
func (a Array) IsInt() bool { return a.ints != nil || a.uints != nil }

// integer returns the i-th value of an integer array as int64 or uint64.
func (a Array) integer(i int) any {
	if a.uints != nil {
		return a.uints[i]
	}
	return a.ints[i]
}

// checkRank returns a *DimensionError for arrays of rank > 2.
func (a Array) checkRank() error {
	if a.Rank() > 2 {
		return &DimensionError{Rank: a.Rank()}
	}
	return nil
}

// columns returns the column count of a rank 0-2 array.
func (a Array) columns() int {
	switch a.Rank() {
	case 0:
		return 1
	case 1:
		return a.shape[0]
	default:
		return a.shape[1]
	}
}

// rows returns the number of logical rows of a rank 0-2 array.
func (a Array) rows() int {
	if a.Rank() == 2 {
		return a.shape[0]
	}
	return 1
}

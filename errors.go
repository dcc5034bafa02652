package balltree

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hupe1980/balltree/geometry"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNilItem is returned when a nil item is inserted.
	ErrNilItem = errors.New("nil items are not permitted")
)

// ErrInvalidDimension indicates an invalid configured dimension at
// construction. Valid dimensions are in [1, geometry.MaxDimension].
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d (must be in [1, %d])", e.Dimension, geometry.MaxDimension)
}

// ErrDimensionMismatch indicates a location whose length differs from
// the tree's configured dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// isNilItem reports whether v is nil for nilable kinds of T. Value
// kinds (numbers, strings, structs) can never be nil and always pass.
func isNilItem[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// SPDX-License-Identifier: MIT

// Package dense: read-only surfaces accepted by binary operations.
// Binary operations take these interfaces so that any storage strategy can be
// an operand; dense-backed operands are detected with one type assertion and
// processed on their flat backing slice instead of through At.

package dense

// Vec is the read-only surface of a one-dimensional container.
// *Vector, *RowVector and *ColumnVector implement it.
type Vec[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns element i or ErrOutOfRange.
	At(i int) (T, error)
}

// Grid is the read-only surface of a two-dimensional container.
// *Matrix implements it.
type Grid[T any] interface {
	// RowCount returns the number of rows.
	RowCount() int

	// ColumnCount returns the number of columns.
	ColumnCount() int

	// At returns element (row, col) or an error wrapping ErrOutOfRange.
	At(row, col int) (T, error)
}

// flatter is implemented by dense-backed containers. The returned slice is the
// row-major backing storage and MUST NOT be written to.
type flatter[T any] interface {
	flat() []T
}

// nillable lets validators spot typed nil pointers hidden in an interface.
type nillable interface {
	isNil() bool
}

// flatOf returns the backing slice of x when x is dense-backed.
func flatOf[T any](x any) ([]T, bool) {
	if f, ok := x.(flatter[T]); ok {
		return f.flat(), true
	}

	return nil, false
}

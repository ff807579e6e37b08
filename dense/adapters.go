// SPDX-License-Identifier: MIT

// Package dense - Row/Column vector adapters.
//
// RowVector and ColumnVector are vectors with an orientation. They carry every
// Vector operation (embedded) and add an explicit conversion to a 1×N or N×1
// matrix. Conversions share the immutable backing storage; nothing is copied.

package dense

import "github.com/katalvlaran/ringalg/ring"

// RowVector is a Vector read as a single matrix row.
type RowVector[T any, R ring.Ring[T]] struct {
	Vector[T, R]
}

// ColumnVector is a Vector read as a single matrix column.
type ColumnVector[T any, R ring.Ring[T]] struct {
	Vector[T, R]
}

// NewRowVector returns a row vector holding a private copy of items.
func NewRowVector[T any, R ring.Ring[T]](ops R, items []T) *RowVector[T, R] {
	return NewVector(ops, items).AsRow()
}

// NewColumnVector returns a column vector holding a private copy of items.
func NewColumnVector[T any, R ring.Ring[T]](ops R, items []T) *ColumnVector[T, R] {
	return NewVector(ops, items).AsColumn()
}

// AsMatrix returns the 1×Len matrix holding the same elements.
func (v *RowVector[T, R]) AsMatrix() *Matrix[T, R] {
	return &Matrix[T, R]{ops: v.ops, rows: 1, cols: len(v.items), data: v.items}
}

// AsMatrix returns the Len×1 matrix holding the same elements.
func (v *ColumnVector[T, R]) AsMatrix() *Matrix[T, R] {
	return &Matrix[T, R]{ops: v.ops, rows: len(v.items), cols: 1, data: v.items}
}

// Transpose turns the row into a column with the same elements.
func (v *RowVector[T, R]) Transpose() *ColumnVector[T, R] {
	return &ColumnVector[T, R]{Vector: v.Vector}
}

// Transpose turns the column into a row with the same elements.
func (v *ColumnVector[T, R]) Transpose() *RowVector[T, R] {
	return &RowVector[T, R]{Vector: v.Vector}
}

func (v *RowVector[T, R]) isNil() bool { return v == nil }

func (v *ColumnVector[T, R]) isNil() bool { return v == nil }

var (
	_ Vec[int]  = (*Vector[int, ring.Int])(nil)
	_ Vec[int]  = (*RowVector[int, ring.Int])(nil)
	_ Vec[int]  = (*ColumnVector[int, ring.Int])(nil)
	_ Grid[int] = (*Matrix[int, ring.Int])(nil)
)

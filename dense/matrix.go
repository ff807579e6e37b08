// SPDX-License-Identifier: MIT

// Package dense - Matrix storage (row-major) & read-only accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Column return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) copy; WrapMatrix/At: O(1); Row: O(c); Column: O(r).

package dense

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/ringalg/ring"
)

// matrixErrorf wraps err with "Matrix.<method>: %w".
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// Matrix is an immutable rows×cols grid of T interpreted by the ring R.
//   - rows, cols hold dimensions; either may be zero.
//   - data is a flat buffer of length rows*cols in row-major order
//     (offset = i*cols + j), never written after construction.
type Matrix[T any, R ring.Ring[T]] struct {
	ops  R
	rows int
	cols int
	data []T
}

// NewMatrix returns a rows×cols matrix holding a private copy of items,
// which are read in row-major order.
//
// Implementation:
//   - Stage 1: validate rows, cols >= 0, rows*cols without overflow, and
//     rows*cols == len(items).
//   - Stage 2: copy items into a fresh buffer.
//
// Returns ErrBadShape when any check fails.
// Complexity: O(rows*cols).
func NewMatrix[T any, R ring.Ring[T]](ops R, items []T, rows, cols int) (*Matrix[T, R], error) {
	if err := validateShape(rows, cols, len(items)); err != nil {
		return nil, matrixErrorf(ctxNewMatrix, err)
	}
	cp := make([]T, len(items))
	copy(cp, items)

	return &Matrix[T, R]{ops: ops, rows: rows, cols: cols, data: cp}, nil
}

// MatrixFromSeq collects the finite seq (row-major) into a rows×cols matrix.
// Returns ErrBadShape when the number of yielded items is not rows*cols.
func MatrixFromSeq[T any, R ring.Ring[T]](ops R, seq iter.Seq[T], rows, cols int) (*Matrix[T, R], error) {
	var items []T
	for x := range seq {
		items = append(items, x)
	}
	if err := validateShape(rows, cols, len(items)); err != nil {
		return nil, matrixErrorf(ctxFromSeq, err)
	}

	return &Matrix[T, R]{ops: ops, rows: rows, cols: cols, data: items}, nil
}

// WrapMatrix adopts items (row-major) without copying. The caller MUST NOT
// modify items afterwards.
// Returns ErrBadShape when the shape is invalid.
func WrapMatrix[T any, R ring.Ring[T]](ops R, items []T, rows, cols int) (*Matrix[T, R], error) {
	if err := validateShape(rows, cols, len(items)); err != nil {
		return nil, matrixErrorf(ctxWrapMatrix, err)
	}

	return &Matrix[T, R]{ops: ops, rows: rows, cols: cols, data: items}, nil
}

// MatrixFromRows builds a matrix from a slice of equal-length rows.
// No rows yield a 0×0 matrix; rows of length zero yield an r×0 matrix.
// Returns ErrBadShape for ragged input.
// Complexity: O(r*c).
func MatrixFromRows[T any, R ring.Ring[T]](ops R, rows [][]T) (*Matrix[T, R], error) {
	if len(rows) == 0 {
		return &Matrix[T, R]{ops: ops}, nil
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d items, want %d: %w",
				ctxFromRows, i, len(row), cols, ErrBadShape)
		}
		data = append(data, row...)
	}

	return &Matrix[T, R]{ops: ops, rows: len(rows), cols: cols, data: data}, nil
}

// Ring returns the ring operations this matrix computes with.
func (m *Matrix[T, R]) Ring() R { return m.ops }

// RowCount returns the number of rows.
func (m *Matrix[T, R]) RowCount() int { return m.rows }

// ColumnCount returns the number of columns.
func (m *Matrix[T, R]) ColumnCount() int { return m.cols }

// ItemCount returns RowCount*ColumnCount.
func (m *Matrix[T, R]) ItemCount() int { return len(m.data) }

// SameSize reports whether other has the same RowCount and ColumnCount.
// A nil operand is never the same size.
func (m *Matrix[T, R]) SameSize(other Grid[T]) bool {
	return validateSameSize(m.rows, m.cols, other) == nil
}

// At returns element (row, col).
// Returns ErrRowOutOfRange or ErrColumnOutOfRange, both wrapping ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T, R]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= m.rows {
		return zero, fmt.Errorf("Matrix.%s(%d,%d): rows %d: %w", ctxAt, row, col, m.rows, ErrRowOutOfRange)
	}
	if col < 0 || col >= m.cols {
		return zero, fmt.Errorf("Matrix.%s(%d,%d): columns %d: %w", ctxAt, row, col, m.cols, ErrColumnOutOfRange)
	}

	return m.data[row*m.cols+col], nil
}

// Row returns a copy of row r as a RowVector of length ColumnCount.
// Returns ErrRowOutOfRange when r is outside [0, RowCount).
func (m *Matrix[T, R]) Row(r int) (*RowVector[T, R], error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("Matrix.%s(%d): rows %d: %w", ctxRow, r, m.rows, ErrRowOutOfRange)
	}

	return m.row(r), nil
}

// Column returns a copy of column c as a ColumnVector of length RowCount.
// Returns ErrColumnOutOfRange when c is outside [0, ColumnCount).
func (m *Matrix[T, R]) Column(c int) (*ColumnVector[T, R], error) {
	if c < 0 || c >= m.cols {
		return nil, fmt.Errorf("Matrix.%s(%d): columns %d: %w", ctxColumn, c, m.cols, ErrColumnOutOfRange)
	}

	return m.column(c), nil
}

// row copies row r; r is in range.
func (m *Matrix[T, R]) row(r int) *RowVector[T, R] {
	items := make([]T, m.cols)
	copy(items, m.data[r*m.cols:(r+1)*m.cols])

	return &RowVector[T, R]{Vector: Vector[T, R]{ops: m.ops, items: items}}
}

// column copies column c by striding through data with stride cols; c is in range.
func (m *Matrix[T, R]) column(c int) *ColumnVector[T, R] {
	items := make([]T, m.rows)
	for i := range items {
		items[i] = m.data[i*m.cols+c]
	}

	return &ColumnVector[T, R]{Vector: Vector[T, R]{ops: m.ops, items: items}}
}

// Rows iterates the RowCount rows top to bottom. Each row is materialized
// on demand; ranging again restarts from the first row.
func (m *Matrix[T, R]) Rows() iter.Seq[*RowVector[T, R]] {
	return func(yield func(*RowVector[T, R]) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(m.row(i)) {
				return
			}
		}
	}
}

// Columns iterates the ColumnCount columns left to right.
func (m *Matrix[T, R]) Columns() iter.Seq[*ColumnVector[T, R]] {
	return func(yield func(*ColumnVector[T, R]) bool) {
		for j := 0; j < m.cols; j++ {
			if !yield(m.column(j)) {
				return
			}
		}
	}
}

// Items returns a row-major copy of all elements.
func (m *Matrix[T, R]) Items() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// Values iterates all elements in row-major order.
func (m *Matrix[T, R]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range m.data {
			if !yield(x) {
				return
			}
		}
	}
}

// Do calls f(i, j, v) for every element in row-major order and stops early
// when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Matrix[T, R]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Equals reports whether other has the same size and every pair of
// elements is equal under the ring's Equals. A nil operand is never equal.
func (m *Matrix[T, R]) Equals(other Grid[T]) bool {
	if validateSameSize(m.rows, m.cols, other) != nil {
		return false
	}
	bs, err := gatherGrid(other)
	if err != nil {
		return false
	}
	for k, a := range m.data {
		if !m.ops.Equals(a, bs[k]) {
			return false
		}
	}

	return true
}

// ToRowVector converts a 1×N matrix back to a RowVector without copying.
// Returns ErrDimensionMismatch when RowCount != 1.
func (m *Matrix[T, R]) ToRowVector() (*RowVector[T, R], error) {
	if m.rows != 1 {
		return nil, fmt.Errorf("Matrix.%s: %dx%d: %w", ctxToRowVector, m.rows, m.cols, ErrDimensionMismatch)
	}

	return &RowVector[T, R]{Vector: Vector[T, R]{ops: m.ops, items: m.data}}, nil
}

// ToColumnVector converts an N×1 matrix back to a ColumnVector without copying.
// Returns ErrDimensionMismatch when ColumnCount != 1.
func (m *Matrix[T, R]) ToColumnVector() (*ColumnVector[T, R], error) {
	if m.cols != 1 {
		return nil, fmt.Errorf("Matrix.%s: %dx%d: %w", ctxToColVector, m.rows, m.cols, ErrDimensionMismatch)
	}

	return &ColumnVector[T, R]{Vector: Vector[T, R]{ops: m.ops, items: m.data}}, nil
}

// String renders one "[a, b]" line per row.
func (m *Matrix[T, R]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		writeRow(&b, m.data[i*m.cols:(i+1)*m.cols])
		b.WriteByte('\n')
	}

	return b.String()
}

func (m *Matrix[T, R]) flat() []T { return m.data }

func (m *Matrix[T, R]) isNil() bool { return m == nil }

// gatherGrid returns the row-major elements of g, reading the backing slice
// directly when g is dense-backed. The result MUST NOT be written to.
func gatherGrid[T any](g Grid[T]) ([]T, error) {
	if f, ok := flatOf[T](g); ok {
		return f, nil
	}
	rows, cols := g.RowCount(), g.ColumnCount()
	out := make([]T, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x, err := g.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package dense - constructors for neutral elements & reductions.
//
// Purpose:
//   - Intention-revealing entry points that compose the core types.
//   - Reductions fold with the matrix's own ring, from Zero, in index order.

package dense

import (
	"fmt"

	"github.com/katalvlaran/ringalg/ring"
)

// Zeros returns a rows×cols matrix of the ring's Zero.
// Returns ErrBadShape for negative or overflowing dimensions.
// Complexity: O(rows*cols).
func Zeros[T any, R ring.Ring[T]](ops R, rows, cols int) (*Matrix[T, R], error) {
	n, err := area(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxZeros, rows, cols, err)
	}

	return &Matrix[T, R]{ops: ops, rows: rows, cols: cols, data: fill(ops.Zero(), n)}, nil
}

// Identity returns the n×n matrix with One on the diagonal and Zero elsewhere.
// Returns ErrBadShape when n < 0.
// Complexity: O(n^2).
func Identity[T any, R ring.Ring[T]](ops R, n int) (*Matrix[T, R], error) {
	m, err := Zeros[T](ops, n, n)
	if err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxIdentity, n, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = ops.One()
	}

	return m, nil
}

// RowSums returns the column vector whose i-th element is Σ_j m[i,j].
// A matrix with zero columns yields a vector of Zero.
func RowSums[T any, R ring.Ring[T]](m *Matrix[T, R]) *ColumnVector[T, R] {
	out := make([]T, m.rows)
	for i := range out {
		out[i] = ring.Sum[T](m.ops, m.data[i*m.cols:(i+1)*m.cols]...)
	}

	return &ColumnVector[T, R]{Vector: Vector[T, R]{ops: m.ops, items: out}}
}

// ColumnSums returns the row vector whose j-th element is Σ_i m[i,j].
func ColumnSums[T any, R ring.Ring[T]](m *Matrix[T, R]) *RowVector[T, R] {
	out := fill(m.ops.Zero(), m.cols)
	m.Do(func(_, j int, v T) bool {
		out[j] = m.ops.Add(out[j], v)

		return true
	})

	return &RowVector[T, R]{Vector: Vector[T, R]{ops: m.ops, items: out}}
}

// Trace returns Σ_i m[i,i] over the leading diagonal of a square matrix.
// Returns ErrDimensionMismatch for non-square input.
func Trace[T any, R ring.Ring[T]](m *Matrix[T, R]) (T, error) {
	if m.rows != m.cols {
		var zero T

		return zero, fmt.Errorf("Matrix.Trace: %dx%d: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	acc := m.ops.Zero()
	for i := 0; i < m.rows; i++ {
		acc = m.ops.Add(acc, m.data[i*m.cols+i])
	}

	return acc, nil
}

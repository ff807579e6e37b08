// SPDX-License-Identifier: MIT

// Package dense - Matrix arithmetic & structural transforms.
//
// Purpose:
//   - Element-wise ring arithmetic generalized over the flat row-major buffer.
//   - Matrix product, matrix×vector product, row/column-wise maps, circular
//     sub-matrix extraction and transpose.
//
// Determinism:
//   - Fixed loop orders; every product cell folds from Zero with k increasing.
//
// AI-Hints:
//   - Dense-backed operands skip At entirely; foreign Grid implementations are
//     gathered once into row-major order and then follow the same code path.

package dense

import "fmt"

// mapped returns f applied to every element.
func (m *Matrix[T, R]) mapped(f func(T) T) *Matrix[T, R] {
	out := make([]T, len(m.data))
	for k, a := range m.data {
		out[k] = f(a)
	}

	return &Matrix[T, R]{ops: m.ops, rows: m.rows, cols: m.cols, data: out}
}

// zip validates other as SameSize and returns f(m[k], other[k]) row-major.
// Implementation:
//   - Stage 1: NotNil -> SameRows -> SameCols.
//   - Stage 2: gather other (fast path for dense-backed operands).
//   - Stage 3: combine into a fresh buffer.
func (m *Matrix[T, R]) zip(method string, other Grid[T], f func(a, b T) T) (*Matrix[T, R], error) {
	if err := validateSameSize(m.rows, m.cols, other); err != nil {
		return nil, matrixErrorf(method, err)
	}
	bs, err := gatherGrid(other)
	if err != nil {
		return nil, matrixErrorf(method, err)
	}
	out := make([]T, len(m.data))
	for k, a := range m.data {
		out[k] = f(a, bs[k])
	}

	return &Matrix[T, R]{ops: m.ops, rows: m.rows, cols: m.cols, data: out}, nil
}

// LeftScale returns s*m[i,j] for every element.
func (m *Matrix[T, R]) LeftScale(s T) *Matrix[T, R] {
	return m.mapped(func(a T) T { return m.ops.Multiply(s, a) })
}

// RightScale returns m[i,j]*s for every element.
func (m *Matrix[T, R]) RightScale(s T) *Matrix[T, R] {
	return m.mapped(func(a T) T { return m.ops.Multiply(a, s) })
}

// Add returns m+other element-wise.
// Returns ErrDimensionMismatch unless SameSize, ErrNilArgument for nil.
func (m *Matrix[T, R]) Add(other Grid[T]) (*Matrix[T, R], error) {
	return m.zip(ctxAdd, other, m.ops.Add)
}

// Subtract returns m-other element-wise.
// Returns ErrDimensionMismatch unless SameSize, ErrNilArgument for nil.
func (m *Matrix[T, R]) Subtract(other Grid[T]) (*Matrix[T, R], error) {
	return m.zip(ctxSubtract, other, m.ops.Subtract)
}

// Negative returns -m[i,j] for every element.
func (m *Matrix[T, R]) Negative() *Matrix[T, R] {
	return m.mapped(m.ops.Negative)
}

// AdditiveIdentity returns a matrix of Zero with the same shape as m.
func (m *Matrix[T, R]) AdditiveIdentity() *Matrix[T, R] {
	return &Matrix[T, R]{ops: m.ops, rows: m.rows, cols: m.cols, data: fill(m.ops.Zero(), len(m.data))}
}

// Apply returns f(m[i,j]) for every element. f must not be nil.
func (m *Matrix[T, R]) Apply(f func(T) T) *Matrix[T, R] {
	return m.mapped(f)
}

// ApplyPairwise returns f(m[i,j], other[i,j]) for every element.
// Returns ErrNilArgument for a nil f or operand, ErrDimensionMismatch unless SameSize.
func (m *Matrix[T, R]) ApplyPairwise(f func(a, b T) T, other Grid[T]) (*Matrix[T, R], error) {
	if f == nil {
		return nil, matrixErrorf(ctxPairwise, ErrNilArgument)
	}

	return m.zip(ctxPairwise, other, f)
}

// Hadamard returns the element-wise product m[i,j]*other[i,j].
// Returns ErrDimensionMismatch unless SameSize, ErrNilArgument for nil.
func (m *Matrix[T, R]) Hadamard(other Grid[T]) (*Matrix[T, R], error) {
	return m.zip(ctxHadamard, other, m.ops.Multiply)
}

// CanMultiply reports whether m.ColumnCount == other.RowCount.
func (m *Matrix[T, R]) CanMultiply(other Grid[T]) bool {
	return validateMulCompatible(m.cols, other) == nil
}

// Multiply returns the matrix product m×other (RowCount × other.ColumnCount).
//
// Implementation:
//   - Stage 1: validate NotNil and m.cols == other.rows.
//   - Stage 2: gather other row-major (no copy when dense-backed).
//   - Stage 3: i→k→j loops; out[i,j] starts at Zero and accumulates
//     m[i,k]*other[k,j] with k increasing.
//
// Behavior highlights:
//   - Fails without computing anything when shapes are incompatible.
//   - An inner dimension of zero yields a matrix of Zero.
//
// Returns ErrDimensionMismatch unless CanMultiply, ErrNilArgument for nil.
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Matrix[T, R]) Multiply(other Grid[T]) (*Matrix[T, R], error) {
	if err := validateMulCompatible(m.cols, other); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%dx%d, %dx%d): %w",
			ctxMultiply, m.rows, m.cols, otherRows(other), otherCols(other), err)
	}
	bs, err := gatherGrid(other)
	if err != nil {
		return nil, matrixErrorf(ctxMultiply, err)
	}

	r, n, c := m.rows, m.cols, other.ColumnCount()
	out := fill(m.ops.Zero(), r*c)
	var i, k, j, aBase, bBase, oBase int
	var aik T
	for i = 0; i < r; i++ {
		aBase = i * n
		oBase = i * c
		for k = 0; k < n; k++ {
			aik = m.data[aBase+k]
			bBase = k * c
			for j = 0; j < c; j++ {
				out[oBase+j] = m.ops.Add(out[oBase+j], m.ops.Multiply(aik, bs[bBase+j]))
			}
		}
	}

	return &Matrix[T, R]{ops: m.ops, rows: r, cols: c, data: out}, nil
}

// otherRows and otherCols describe a possibly nil operand in error messages.
func otherRows[T any](g Grid[T]) int {
	if isNilOperand(g) {
		return 0
	}

	return g.RowCount()
}

func otherCols[T any](g Grid[T]) int {
	if isNilOperand(g) {
		return 0
	}

	return g.ColumnCount()
}

// MulVec returns the column vector m×v of length RowCount, where
// result[i] = Σ_k m[i,k]*v[k] folded from Zero.
// Returns ErrDimensionMismatch when v.Len() != ColumnCount, ErrNilArgument for nil.
func (m *Matrix[T, R]) MulVec(v Vec[T]) (*ColumnVector[T, R], error) {
	if err := validateSameLen(m.cols, v); err != nil {
		return nil, matrixErrorf(ctxMulVec, err)
	}
	xs, err := gather(v)
	if err != nil {
		return nil, matrixErrorf(ctxMulVec, err)
	}
	out := make([]T, m.rows)
	for i := range out {
		out[i] = innerProduct(m.ops, m.data[i*m.cols:(i+1)*m.cols], xs)
	}

	return &ColumnVector[T, R]{Vector: Vector[T, R]{ops: m.ops, items: out}}, nil
}

// ApplyOnRows maps every row through f and stacks the results.
//
// Implementation:
//   - Stage 1: a matrix with zero rows returns itself.
//   - Stage 2: call f on each row top to bottom; the first result fixes the
//     output width L.
//   - Stage 3: every later result must have length L.
//
// Returns a RowCount×L matrix, ErrNilArgument for a nil f or result,
// ErrDimensionMismatch when results disagree on length.
func (m *Matrix[T, R]) ApplyOnRows(f func(row *RowVector[T, R]) Vec[T]) (*Matrix[T, R], error) {
	if f == nil {
		return nil, matrixErrorf(ctxOnRows, ErrNilArgument)
	}
	if m.rows == 0 {
		return m, nil
	}
	var data []T
	width := -1
	for i := 0; i < m.rows; i++ {
		xs, err := mapLine(f(m.row(i)), width)
		if err != nil {
			return nil, fmt.Errorf("Matrix.%s: row %d: %w", ctxOnRows, i, err)
		}
		if width < 0 {
			width = len(xs)
			data = make([]T, 0, m.rows*width)
		}
		data = append(data, xs...)
	}

	return &Matrix[T, R]{ops: m.ops, rows: m.rows, cols: width, data: data}, nil
}

// ApplyOnColumns maps every column through f and places the results side by
// side. Returns an L×ColumnCount matrix; errors as ApplyOnRows. A matrix with
// zero columns returns itself.
func (m *Matrix[T, R]) ApplyOnColumns(f func(col *ColumnVector[T, R]) Vec[T]) (*Matrix[T, R], error) {
	if f == nil {
		return nil, matrixErrorf(ctxOnColumns, ErrNilArgument)
	}
	if m.cols == 0 {
		return m, nil
	}
	var data []T
	height := -1
	for j := 0; j < m.cols; j++ {
		xs, err := mapLine(f(m.column(j)), height)
		if err != nil {
			return nil, fmt.Errorf("Matrix.%s: column %d: %w", ctxOnColumns, j, err)
		}
		if height < 0 {
			height = len(xs)
			data = make([]T, height*m.cols)
		}
		for k, x := range xs {
			data[k*m.cols+j] = x
		}
	}

	return &Matrix[T, R]{ops: m.ops, rows: height, cols: m.cols, data: data}, nil
}

// mapLine gathers one ApplyOnRows/ApplyOnColumns result and checks it
// against the expected length (want < 0 accepts any length).
func mapLine[T any](out Vec[T], want int) ([]T, error) {
	if isNilOperand(out) {
		return nil, ErrNilArgument
	}
	if want >= 0 && out.Len() != want {
		return nil, fmt.Errorf("len %d != %d: %w", out.Len(), want, ErrDimensionMismatch)
	}

	return gather(out)
}

// Slice extracts the sub-matrix covering rows [rowFrom, rowTo) and columns
// [colFrom, colTo), each range wrapping circularly exactly like Vector.Slice.
//
// Behavior highlights:
//   - A matrix with zero rows or zero columns returns itself.
//   - Slice(0, 0, 0, 0) equals m.
//
// Complexity: O(result items).
func (m *Matrix[T, R]) Slice(rowFrom, rowTo, colFrom, colTo int) *Matrix[T, R] {
	if m.rows == 0 || m.cols == 0 {
		return m
	}
	rs, rc := circular(rowFrom, rowTo, m.rows)
	cs, cc := circular(colFrom, colTo, m.cols)
	out := make([]T, rc*cc)
	var i, j, base int
	for i = 0; i < rc; i++ {
		base = ((rs + i) % m.rows) * m.cols
		for j = 0; j < cc; j++ {
			out[i*cc+j] = m.data[base+(cs+j)%m.cols]
		}
	}

	return &Matrix[T, R]{ops: m.ops, rows: rc, cols: cc, data: out}
}

// Transpose returns the ColumnCount×RowCount matrix with t[j,i] = m[i,j].
// Complexity: O(r*c).
func (m *Matrix[T, R]) Transpose() *Matrix[T, R] {
	out := make([]T, len(m.data))
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}

	return &Matrix[T, R]{ops: m.ops, rows: m.cols, cols: m.rows, data: out}
}

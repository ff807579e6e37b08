// SPDX-License-Identifier: MIT

// Package dense - Vector storage & read-only accessors.
//
// Purpose:
//   - Hold a fixed-length sequence of scalars together with the ring that
//     interprets them.
//   - Guarantee immutability: constructors copy (except WrapVector), nothing
//     writes after construction, accessors return copies.
//   - Return errors instead of panicking at the public surface.
//
// Complexity quicksheet:
//   - NewVector/VectorFromSeq: O(n); WrapVector/Len/At: O(1); Items: O(n).

package dense

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/ringalg/ring"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxAdd         = "Add"
	ctxSubtract    = "Subtract"
	ctxPairwise    = "ApplyPairwise"
	ctxInner       = "InnerProduct"
	ctxZeroVector  = "ZeroVector"
	ctxRow         = "Row"
	ctxColumn      = "Column"
	ctxMultiply    = "Multiply"
	ctxMulVec      = "MulVec"
	ctxHadamard    = "Hadamard"
	ctxOnRows      = "ApplyOnRows"
	ctxOnColumns   = "ApplyOnColumns"
	ctxNewMatrix   = "NewMatrix"
	ctxFromRows    = "MatrixFromRows"
	ctxFromSeq     = "MatrixFromSeq"
	ctxWrapMatrix  = "WrapMatrix"
	ctxZeros       = "Zeros"
	ctxIdentity    = "Identity"
	ctxToRowVector = "ToRowVector"
	ctxToColVector = "ToColumnVector"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
)

// vectorErrorf wraps err with "Vector.<method>: %w".
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Vector is an immutable, fixed-length sequence of T interpreted by the ring R.
// The zero value is not usable; build vectors with NewVector, VectorFromSeq,
// WrapVector or ZeroVector.
type Vector[T any, R ring.Ring[T]] struct {
	ops   R   // ring used for every arithmetic operation
	items []T // never written after construction
}

// NewVector returns a vector holding a private copy of items.
// A nil or empty items slice yields an empty vector.
// Complexity: O(n).
func NewVector[T any, R ring.Ring[T]](ops R, items []T) *Vector[T, R] {
	cp := make([]T, len(items))
	copy(cp, items)

	return &Vector[T, R]{ops: ops, items: cp}
}

// VectorFromSeq collects seq into a new vector. seq must be finite.
// Complexity: O(n).
func VectorFromSeq[T any, R ring.Ring[T]](ops R, seq iter.Seq[T]) *Vector[T, R] {
	var items []T
	for x := range seq {
		items = append(items, x)
	}

	return &Vector[T, R]{ops: ops, items: items}
}

// WrapVector adopts items without copying. The caller MUST NOT modify items
// afterwards; doing so breaks the immutability of the returned vector.
// Complexity: O(1).
func WrapVector[T any, R ring.Ring[T]](ops R, items []T) *Vector[T, R] {
	return &Vector[T, R]{ops: ops, items: items}
}

// ZeroVector returns a vector of n additive identities.
// Returns ErrBadShape when n < 0.
// Complexity: O(n).
func ZeroVector[T any, R ring.Ring[T]](ops R, n int) (*Vector[T, R], error) {
	if err := validateLength(n); err != nil {
		return nil, vectorErrorf(ctxZeroVector, err)
	}

	return &Vector[T, R]{ops: ops, items: fill(ops.Zero(), n)}, nil
}

// fill returns a fresh slice of n copies of x.
func fill[T any](x T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = x
	}

	return out
}

// Ring returns the ring operations this vector computes with.
func (v *Vector[T, R]) Ring() R { return v.ops }

// Len returns the number of elements.
func (v *Vector[T, R]) Len() int { return len(v.items) }

// At returns element i.
// Returns ErrOutOfRange when i is outside [0, Len).
// Complexity: O(1).
func (v *Vector[T, R]) At(i int) (T, error) {
	if i < 0 || i >= len(v.items) {
		var zero T

		return zero, fmt.Errorf("Vector.%s(%d): len %d: %w", ctxAt, i, len(v.items), ErrOutOfRange)
	}

	return v.items[i], nil
}

// Items returns a copy of the elements in order.
func (v *Vector[T, R]) Items() []T {
	cp := make([]T, len(v.items))
	copy(cp, v.items)

	return cp
}

// All iterates (index, element) pairs in order.
func (v *Vector[T, R]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.items {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values iterates the elements in order.
func (v *Vector[T, R]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.items {
			if !yield(x) {
				return
			}
		}
	}
}

// AsRow views v as a row vector. No copy is made.
func (v *Vector[T, R]) AsRow() *RowVector[T, R] {
	return &RowVector[T, R]{Vector: *v}
}

// AsColumn views v as a column vector. No copy is made.
func (v *Vector[T, R]) AsColumn() *ColumnVector[T, R] {
	return &ColumnVector[T, R]{Vector: *v}
}

// String renders the vector as "[a, b, c]" using %v for each element.
func (v *Vector[T, R]) String() string {
	var b strings.Builder
	writeRow(&b, v.items)

	return b.String()
}

// writeRow appends "[a, b, c]" to b.
func writeRow[T any](b *strings.Builder, items []T) {
	b.WriteString(_fmtRowOpen)
	for i, x := range items {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(b, "%v", x)
	}
	b.WriteString(_fmtRowClose)
}

func (v *Vector[T, R]) flat() []T { return v.items }

func (v *Vector[T, R]) isNil() bool { return v == nil }

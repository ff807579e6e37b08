// SPDX-License-Identifier: MIT

// Package dense - Vector arithmetic.
//
// Purpose:
//   - Element-wise ring arithmetic, inner product and circular slicing.
//   - Every operation returns a new vector; receivers and operands are never
//     modified.
//
// Determinism:
//   - Fixed index order i = 0..n-1; folds start from the ring's Zero.
//
// AI-Hints:
//   - Dense-backed operands (*Vector, *RowVector, *ColumnVector) are read
//     through their backing slice; any other Vec goes through At.

package dense

import "github.com/katalvlaran/ringalg/ring"

// gather returns the elements of x, reading the backing slice directly when x
// is dense-backed. The result MUST NOT be written to.
func gather[T any](x Vec[T]) ([]T, error) {
	if f, ok := flatOf[T](x); ok {
		return f, nil
	}
	out := make([]T, x.Len())
	var err error
	for i := range out {
		if out[i], err = x.At(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// zip validates other against v and returns f(v[i], other[i]) for every i.
// Implementation:
//   - Stage 1: NotNil -> same length.
//   - Stage 2: gather other (fast path for dense-backed operands).
//   - Stage 3: combine element-wise into a fresh slice.
func (v *Vector[T, R]) zip(method string, other Vec[T], f func(a, b T) T) (*Vector[T, R], error) {
	if err := validateSameLen(len(v.items), other); err != nil {
		return nil, vectorErrorf(method, err)
	}
	bs, err := gather(other)
	if err != nil {
		return nil, vectorErrorf(method, err)
	}
	out := make([]T, len(v.items))
	for i, a := range v.items {
		out[i] = f(a, bs[i])
	}

	return &Vector[T, R]{ops: v.ops, items: out}, nil
}

// mapped returns f applied to every element.
func (v *Vector[T, R]) mapped(f func(T) T) *Vector[T, R] {
	out := make([]T, len(v.items))
	for i, a := range v.items {
		out[i] = f(a)
	}

	return &Vector[T, R]{ops: v.ops, items: out}
}

// Equals reports whether other has the same length and every pair of
// elements is equal under the ring's Equals. A nil operand is never equal.
// With a tolerance-based ring the relation is not transitive.
// Complexity: O(n).
func (v *Vector[T, R]) Equals(other Vec[T]) bool {
	if isNilOperand(other) || other.Len() != len(v.items) {
		return false
	}
	bs, err := gather(other)
	if err != nil {
		return false
	}
	for i, a := range v.items {
		if !v.ops.Equals(a, bs[i]) {
			return false
		}
	}

	return true
}

// LeftScale returns s*v[i] for every i. Order matters for non-commutative rings.
func (v *Vector[T, R]) LeftScale(s T) *Vector[T, R] {
	return v.mapped(func(a T) T { return v.ops.Multiply(s, a) })
}

// RightScale returns v[i]*s for every i.
func (v *Vector[T, R]) RightScale(s T) *Vector[T, R] {
	return v.mapped(func(a T) T { return v.ops.Multiply(a, s) })
}

// Add returns v[i]+other[i].
// Returns ErrDimensionMismatch when lengths differ, ErrNilArgument for nil.
func (v *Vector[T, R]) Add(other Vec[T]) (*Vector[T, R], error) {
	return v.zip(ctxAdd, other, v.ops.Add)
}

// Subtract returns v[i]-other[i].
// Returns ErrDimensionMismatch when lengths differ, ErrNilArgument for nil.
func (v *Vector[T, R]) Subtract(other Vec[T]) (*Vector[T, R], error) {
	return v.zip(ctxSubtract, other, v.ops.Subtract)
}

// Negative returns -v[i] for every i.
func (v *Vector[T, R]) Negative() *Vector[T, R] {
	return v.mapped(v.ops.Negative)
}

// AdditiveIdentity returns a vector of Zero with the same length as v.
func (v *Vector[T, R]) AdditiveIdentity() *Vector[T, R] {
	return &Vector[T, R]{ops: v.ops, items: fill(v.ops.Zero(), len(v.items))}
}

// Apply returns f(v[i]) for every i. f must not be nil.
func (v *Vector[T, R]) Apply(f func(T) T) *Vector[T, R] {
	return v.mapped(f)
}

// ApplyPairwise returns f(v[i], other[i]) for every i.
// Returns ErrNilArgument for a nil f or operand, ErrDimensionMismatch when
// lengths differ.
func (v *Vector[T, R]) ApplyPairwise(f func(a, b T) T, other Vec[T]) (*Vector[T, R], error) {
	if f == nil {
		return nil, vectorErrorf(ctxPairwise, ErrNilArgument)
	}

	return v.zip(ctxPairwise, other, f)
}

// InnerProduct returns Σ v[i]*other[i], folded from Zero in increasing i.
// The empty inner product is Zero.
// Returns ErrDimensionMismatch when lengths differ, ErrNilArgument for nil.
// Complexity: O(n).
func (v *Vector[T, R]) InnerProduct(other Vec[T]) (T, error) {
	var zero T
	if err := validateSameLen(len(v.items), other); err != nil {
		return zero, vectorErrorf(ctxInner, err)
	}
	bs, err := gather(other)
	if err != nil {
		return zero, vectorErrorf(ctxInner, err)
	}

	return innerProduct(v.ops, v.items, bs), nil
}

// innerProduct folds a[i]*b[i] from Zero; a and b have equal length.
func innerProduct[T any, R ring.Ring[T]](ops R, a, b []T) T {
	acc := ops.Zero()
	for i := range a {
		acc = ops.Add(acc, ops.Multiply(a[i], b[i]))
	}

	return acc
}

// Slice returns the circular range [from, to) of v.
//
// Implementation:
//   - Stage 1: an empty vector returns itself.
//   - Stage 2: reduce from and to modulo Len (negative values wrap too).
//   - Stage 3: from < to copies the contiguous range; otherwise the range
//     wraps, yielding [from, Len) followed by [0, to).
//
// Behavior highlights:
//   - Slice(k, k) is a full rotation starting at k; Slice(0, 0) equals v.
//   - Never fails: every int pair names a range.
//
// Complexity: O(result length).
func (v *Vector[T, R]) Slice(from, to int) *Vector[T, R] {
	n := len(v.items)
	if n == 0 {
		return v
	}
	start, count := circular(from, to, n)
	out := make([]T, count)
	for k := range out {
		out[k] = v.items[(start+k)%n]
	}

	return &Vector[T, R]{ops: v.ops, items: out}
}

// circular normalizes [from, to) on a cycle of n > 0 positions and returns
// the first position and how many positions the range covers (1..n).
func circular(from, to, n int) (start, count int) {
	from, to = modulo(from, n), modulo(to, n)
	if from < to {
		return from, to - from
	}

	return from, n - from + to
}

// modulo is the Euclidean remainder of a by n > 0.
func modulo(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}

	return a
}

// SPDX-License-Identifier: MIT

package gen

import (
	"iter"
	"math/rand"
)

// Ints returns n ints drawn uniformly from [-maxAbs, maxAbs). WithCount is
// ignored; n wins.
func Ints(n int, opts ...Option) []int {
	o := gatherOptions(opts...)
	rnd := rand.New(rand.NewSource(o.seed))
	out := make([]int, n)
	for i := range out {
		out[i] = signed(rnd, o.maxAbs)
	}

	return out
}

// signed draws from [-bound, bound).
func signed(rnd *rand.Rand, bound int) int {
	return rnd.Intn(2*bound) - bound
}

// Vectors yields count containers built by factory from slices whose length
// is drawn from the configured lengths. Each scalar is scalar(rnd.Int()).
//
// Factory receives a fresh slice it may keep without copying.
func Vectors[T, V any](factory func(items []T) V, scalar func(seed int) T, opts ...Option) iter.Seq[V] {
	o := gatherOptions(opts...)

	return func(yield func(V) bool) {
		rnd := rand.New(rand.NewSource(o.seed))
		for i := 0; i < o.count; i++ {
			n := o.lengths[rnd.Intn(len(o.lengths))]
			if !yield(factory(fill(rnd, n, scalar))) {
				return
			}
		}
	}
}

// Matrices yields count containers built by factory from a row-major slice of
// shape.Items() scalars, with shape drawn from the configured shapes.
func Matrices[T, M any](factory func(items []T, shape Shape) M, scalar func(seed int) T, opts ...Option) iter.Seq[M] {
	o := gatherOptions(opts...)

	return func(yield func(M) bool) {
		rnd := rand.New(rand.NewSource(o.seed))
		for i := 0; i < o.count; i++ {
			s := o.shapes[rnd.Intn(len(o.shapes))]
			if !yield(factory(fill(rnd, s.Items(), scalar), s)) {
				return
			}
		}
	}
}

// Pairs yields count pairs of same-length slices, for binary operations that
// require equal lengths.
func Pairs[T any](scalar func(seed int) T, opts ...Option) iter.Seq2[[]T, []T] {
	o := gatherOptions(opts...)

	return func(yield func([]T, []T) bool) {
		rnd := rand.New(rand.NewSource(o.seed))
		for i := 0; i < o.count; i++ {
			n := o.lengths[rnd.Intn(len(o.lengths))]
			if !yield(fill(rnd, n, scalar), fill(rnd, n, scalar)) {
				return
			}
		}
	}
}

func fill[T any](rnd *rand.Rand, n int, scalar func(int) T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = scalar(rnd.Int())
	}

	return out
}

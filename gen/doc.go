// SPDX-License-Identifier: MIT

// Package gen produces deterministic, seeded random test data for
// property-style tests of ring-parameterized containers.
//
// The generators know nothing about the containers: callers pass a factory
// that turns a slice of scalars (and, for matrices, a Shape) into a value, and
// a scalar generator that turns a random int into a scalar. The same options
// always produce the same sequence, and every range over a returned sequence
// starts again from the seed.
//
// Example:
//
//	for v := range gen.Vectors(func(xs []int) *dense.Vector[int, ring.Int] {
//		return dense.WrapVector(ring.Int{}, xs)
//	}, func(x int) int { return x % 100 }, gen.WithCount(50)) {
//		...
//	}
package gen

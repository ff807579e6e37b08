// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers.
//
// Purpose:
//   - Small, deterministic fixtures over the exact int ring.
//   - Wrappers that mask concrete types so fallback paths run.

package dense_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringalg/dense"
	"github.com/katalvlaran/ringalg/gen"
	"github.com/katalvlaran/ringalg/ring"
)

type (
	intVector = dense.Vector[int, ring.Int]
	intMatrix = dense.Matrix[int, ring.Int]
)

// hideVec wraps any Vec to hide its concrete type from type assertions.
// Use it on ONE operand to force the At-based fallback and compare against
// the dense fast path.
type hideVec struct{ dense.Vec[int] }

// hideGrid is hideVec for matrices.
type hideGrid struct{ dense.Grid[int] }

// iv builds an int vector.
func iv(items ...int) *intVector {
	return dense.NewVector(ring.Int{}, items)
}

// im builds an int matrix from rows or fails the test.
func im(t testing.TB, rows ...[]int) *intMatrix {
	t.Helper()
	m, err := dense.MatrixFromRows(ring.Int{}, rows)
	require.NoError(t, err)

	return m
}

// smallInt maps a generator seed to [-50, 50] so products stay readable.
func smallInt(seed int) int { return seed%101 - 50 }

// intVectors yields random int vectors with default generator options.
func intVectors(opts ...gen.Option) iter.Seq[*intVector] {
	return gen.Vectors(func(items []int) *intVector {
		return dense.WrapVector(ring.Int{}, items)
	}, smallInt, opts...)
}

// intMatrices yields random int matrices with default generator options.
func intMatrices(t testing.TB, opts ...gen.Option) iter.Seq[*intMatrix] {
	return gen.Matrices(func(items []int, s gen.Shape) *intMatrix {
		m, err := dense.WrapMatrix(ring.Int{}, items, s.Rows, s.Columns)
		require.NoError(t, err)

		return m
	}, smallInt, opts...)
}

// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ringalg/dense"
	"github.com/katalvlaran/ringalg/ring"
)

// ErrEmpty is returned when a zero-length shape would reach gonum.
var ErrEmpty = errors.New("bridge: gonum does not support zero-length dimensions")

// MatrixToGonum copies m into a new *mat.Dense.
// Returns ErrEmpty when m has zero rows or zero columns.
// Complexity: O(r*c).
func MatrixToGonum[R ring.Ring[float64]](m *dense.Matrix[float64, R]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("MatrixToGonum: %w", dense.ErrNilArgument)
	}
	if m.RowCount() == 0 || m.ColumnCount() == 0 {
		return nil, fmt.Errorf("MatrixToGonum(%dx%d): %w", m.RowCount(), m.ColumnCount(), ErrEmpty)
	}

	return mat.NewDense(m.RowCount(), m.ColumnCount(), m.Items()), nil
}

// MatrixFromGonum copies any gonum matrix into a dense matrix over ops.
// *mat.Dense sources are copied row by row from their raw storage; other
// implementations go through At.
// Complexity: O(r*c).
func MatrixFromGonum[R ring.Ring[float64]](ops R, src mat.Matrix) (*dense.Matrix[float64, R], error) {
	if src == nil {
		return nil, fmt.Errorf("MatrixFromGonum: %w", dense.ErrNilArgument)
	}
	r, c := src.Dims()
	data := make([]float64, r*c)
	if d, ok := src.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			copy(data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data[i*c+j] = src.At(i, j)
			}
		}
	}

	m, err := dense.WrapMatrix(ops, data, r, c)
	if err != nil {
		return nil, fmt.Errorf("MatrixFromGonum: %w", err)
	}

	return m, nil
}

// VectorToGonum copies v into a new *mat.VecDense.
// Returns ErrEmpty for an empty vector.
func VectorToGonum(v dense.Vec[float64]) (*mat.VecDense, error) {
	if v == nil {
		return nil, fmt.Errorf("VectorToGonum: %w", dense.ErrNilArgument)
	}
	n := v.Len()
	if n == 0 {
		return nil, fmt.Errorf("VectorToGonum: %w", ErrEmpty)
	}
	data := make([]float64, n)
	var err error
	for i := range data {
		if data[i], err = v.At(i); err != nil {
			return nil, fmt.Errorf("VectorToGonum: %w", err)
		}
	}

	return mat.NewVecDense(n, data), nil
}

// VectorFromGonum copies a gonum vector into a dense vector over ops.
func VectorFromGonum[R ring.Ring[float64]](ops R, src mat.Vector) (*dense.Vector[float64, R], error) {
	if src == nil {
		return nil, fmt.Errorf("VectorFromGonum: %w", dense.ErrNilArgument)
	}
	data := make([]float64, src.Len())
	for i := range data {
		data[i] = src.AtVec(i)
	}

	return dense.WrapVector(ops, data), nil
}

// AsGrid presents src as a read-only dense.Grid without copying.
func AsGrid(src mat.Matrix) dense.Grid[float64] {
	return gonumGrid{src}
}

// AsVec presents src as a read-only dense.Vec without copying.
func AsVec(src mat.Vector) dense.Vec[float64] {
	return gonumVec{src}
}

type gonumGrid struct{ m mat.Matrix }

func (g gonumGrid) RowCount() int    { r, _ := g.m.Dims(); return r }
func (g gonumGrid) ColumnCount() int { _, c := g.m.Dims(); return c }

// At bounds-checks before delegating, since gonum panics out of range.
func (g gonumGrid) At(row, col int) (float64, error) {
	r, c := g.m.Dims()
	if row < 0 || row >= r {
		return 0, fmt.Errorf("gonum.At(%d,%d): %w", row, col, dense.ErrRowOutOfRange)
	}
	if col < 0 || col >= c {
		return 0, fmt.Errorf("gonum.At(%d,%d): %w", row, col, dense.ErrColumnOutOfRange)
	}

	return g.m.At(row, col), nil
}

type gonumVec struct{ v mat.Vector }

func (g gonumVec) Len() int { return g.v.Len() }

func (g gonumVec) At(i int) (float64, error) {
	if i < 0 || i >= g.v.Len() {
		return 0, fmt.Errorf("gonum.AtVec(%d): %w", i, dense.ErrOutOfRange)
	}

	return g.v.AtVec(i), nil
}

// SPDX-License-Identifier: MIT

package dense_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringalg/dense"
	"github.com/katalvlaran/ringalg/gen"
	"github.com/katalvlaran/ringalg/ring"
)

type intRow = dense.RowVector[int, ring.Int]
type intCol = dense.ColumnVector[int, ring.Int]

func TestNewMatrix_Shape(t *testing.T) {
	t.Parallel()

	m, err := dense.NewMatrix(ring.Int{}, []int{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.RowCount())
	require.Equal(t, 3, m.ColumnCount())
	require.Equal(t, 6, m.ItemCount())

	cases := []struct {
		name       string
		items      []int
		rows, cols int
	}{
		{"count mismatch", []int{1, 2, 3}, 2, 2},
		{"negative rows", nil, -1, 0},
		{"negative cols", nil, 0, -2},
		{"overflow", nil, math.MaxInt, 2},
		{"overflow square", nil, 1 << 32, 1 << 32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dense.NewMatrix(ring.Int{}, tc.items, tc.rows, tc.cols)
			require.ErrorIs(t, err, dense.ErrBadShape)
			_, err = dense.WrapMatrix(ring.Int{}, tc.items, tc.rows, tc.cols)
			require.ErrorIs(t, err, dense.ErrBadShape)
		})
	}
}

func TestNewMatrix_ZeroArea(t *testing.T) {
	t.Parallel()

	for _, s := range []gen.Shape{{0, 0}, {0, 3}, {4, 0}} {
		m, err := dense.NewMatrix(ring.Int{}, nil, s.Rows, s.Columns)
		require.NoError(t, err, s.String())
		require.Equal(t, 0, m.ItemCount())
		require.Equal(t, s.Rows, m.RowCount())
		require.Equal(t, s.Columns, m.ColumnCount())
	}
}

func TestMatrix_OtherConstructors(t *testing.T) {
	t.Parallel()

	m, err := dense.MatrixFromSeq(ring.Int{}, slices.Values([]int{1, 2, 3, 4}), 2, 2)
	require.NoError(t, err)
	require.True(t, m.Equals(im(t, []int{1, 2}, []int{3, 4})))

	_, err = dense.MatrixFromSeq(ring.Int{}, slices.Values([]int{1, 2, 3, 4}), 3, 1)
	require.ErrorIs(t, err, dense.ErrBadShape)

	_, err = dense.MatrixFromRows(ring.Int{}, [][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, dense.ErrBadShape)

	empty, err := dense.MatrixFromRows(ring.Int{}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.RowCount())
	require.Equal(t, 0, empty.ColumnCount())

	src := []int{1, 2}
	c, err := dense.NewMatrix(ring.Int{}, src, 1, 2)
	require.NoError(t, err)
	src[0] = 9
	x, _ := c.At(0, 0)
	require.Equal(t, 1, x, "NewMatrix copies")
}

func TestMatrix_At_Bounds(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2, 3}, []int{4, 5, 6})
	x, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6, x)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, dense.ErrRowOutOfRange)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	require.NotErrorIs(t, err, dense.ErrColumnOutOfRange)

	_, err = m.At(0, 3)
	require.ErrorIs(t, err, dense.ErrColumnOutOfRange)
	require.ErrorIs(t, err, dense.ErrOutOfRange)

	_, err = m.At(-1, -1)
	require.ErrorIs(t, err, dense.ErrRowOutOfRange)
}

func TestMatrix_RowColumn(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2, 3}, []int{4, 5, 6})
	r, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, r.Items())

	c, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, c.Items())

	_, err = m.Row(2)
	require.ErrorIs(t, err, dense.ErrRowOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, dense.ErrColumnOutOfRange)
}

func TestMatrix_RowsColumns_RoundTrip(t *testing.T) {
	t.Parallel()

	for m := range intMatrices(t) {
		var flat []int
		rows := 0
		for r := range m.Rows() {
			require.Equal(t, m.ColumnCount(), r.Len())
			flat = append(flat, r.Items()...)
			rows++
		}
		require.Equal(t, m.RowCount(), rows)
		require.Equal(t, m.ItemCount(), len(flat))
		if m.ItemCount() > 0 {
			require.Equal(t, m.Items(), flat)
		}

		zipped := make([]int, m.ItemCount())
		j := 0
		for c := range m.Columns() {
			require.Equal(t, m.RowCount(), c.Len())
			for i, x := range c.All() {
				zipped[i*m.ColumnCount()+j] = x
			}
			j++
		}
		require.Equal(t, m.ColumnCount(), j)
		require.Equal(t, m.Items(), zipped)
	}
}

func TestMatrix_Multiply_Concrete(t *testing.T) {
	t.Parallel()

	a := im(t, []int{1, 2}, []int{3, 4})
	b := im(t, []int{5, 6}, []int{7, 8})
	want := im(t, []int{19, 22}, []int{43, 50})

	got, err := a.Multiply(b)
	require.NoError(t, err)
	require.True(t, got.Equals(want), "got\n%v", got)

	slow, err := a.Multiply(hideGrid{b})
	require.NoError(t, err)
	require.Equal(t, got.Items(), slow.Items())

	fa, err := dense.NewMatrix(ring.Float64{}, []float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	fb, err := dense.NewMatrix(ring.Float64{}, []float64{5, 6, 7, 8}, 2, 2)
	require.NoError(t, err)
	fp, err := fa.Multiply(fb)
	require.NoError(t, err)
	require.Equal(t, []float64{19, 22, 43, 50}, fp.Items())
}

func TestMatrix_CanMultiply(t *testing.T) {
	t.Parallel()

	a, err := dense.Zeros[int](ring.Int{}, 2, 3)
	require.NoError(t, err)
	b, err := dense.Zeros[int](ring.Int{}, 3, 2)
	require.NoError(t, err)
	c, err := dense.Zeros[int](ring.Int{}, 4, 2)
	require.NoError(t, err)

	require.True(t, a.CanMultiply(b))
	require.True(t, b.CanMultiply(a))
	require.False(t, a.CanMultiply(a))
	require.False(t, a.CanMultiply(c))
	require.False(t, a.CanMultiply(nil))

	_, err = a.Multiply(a)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = a.Multiply(nil)
	require.ErrorIs(t, err, dense.ErrNilArgument)
	var typedNil *intMatrix
	_, err = a.Multiply(typedNil)
	require.ErrorIs(t, err, dense.ErrNilArgument)
}

func TestMatrix_Multiply_EmptyInner(t *testing.T) {
	t.Parallel()

	a, err := dense.NewMatrix(ring.Int{}, nil, 2, 0)
	require.NoError(t, err)
	b, err := dense.NewMatrix(ring.Int{}, nil, 0, 3)
	require.NoError(t, err)
	p, err := a.Multiply(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.RowCount())
	require.Equal(t, 3, p.ColumnCount())
	require.Equal(t, []int{0, 0, 0, 0, 0, 0}, p.Items())
}

func TestMatrix_Multiply_Properties(t *testing.T) {
	t.Parallel()

	dims := []int{0, 1, 2, 3}
	seed := int64(1)
	mk := func(r, c int) *intMatrix {
		seed++
		xs := gen.Ints(r*c, gen.WithSeed(seed), gen.WithMaxAbs(20))
		m, err := dense.WrapMatrix(ring.Int{}, xs, r, c)
		require.NoError(t, err)

		return m
	}
	for _, r := range dims {
		for _, n := range dims {
			for _, p := range dims {
				a, b, c := mk(r, n), mk(n, p), mk(p, 2)

				ab, err := a.Multiply(b)
				require.NoError(t, err)
				require.Equal(t, r, ab.RowCount())
				require.Equal(t, p, ab.ColumnCount())

				left, err := ab.Multiply(c)
				require.NoError(t, err)
				bc, err := b.Multiply(c)
				require.NoError(t, err)
				right, err := a.Multiply(bc)
				require.NoError(t, err)
				require.True(t, left.Equals(right), "(AB)C != A(BC) for %dx%d·%dx%d·%dx2", r, n, n, p, p)

				slow, err := a.Multiply(hideGrid{b})
				require.NoError(t, err)
				require.True(t, slow.Equals(ab))

				id, err := dense.Identity[int](ring.Int{}, n)
				require.NoError(t, err)
				ai, err := a.Multiply(id)
				require.NoError(t, err)
				require.True(t, ai.Equals(a))
			}
		}
	}
}

func TestMatrix_Elementwise(t *testing.T) {
	t.Parallel()

	a := im(t, []int{1, 2}, []int{3, 4})
	b := im(t, []int{5, 6}, []int{7, 8})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []int{6, 8, 10, 12}, sum.Items())

	diff, err := a.Subtract(hideGrid{b})
	require.NoError(t, err)
	require.Equal(t, []int{-4, -4, -4, -4}, diff.Items())

	h, err := a.Hadamard(b)
	require.NoError(t, err)
	require.Equal(t, []int{5, 12, 21, 32}, h.Items())

	mx, err := a.ApplyPairwise(func(x, y int) int { return max(x, y) }, hideGrid{im(t, []int{0, 9}, []int{9, 0})})
	require.NoError(t, err)
	require.Equal(t, []int{1, 9, 9, 4}, mx.Items())

	require.Equal(t, []int{2, 4, 6, 8}, a.LeftScale(2).Items())
	require.Equal(t, []int{-3, -6, -9, -12}, a.RightScale(-3).Items())
	require.Equal(t, []int{-1, -2, -3, -4}, a.Negative().Items())
	require.Equal(t, []int{1, 4, 9, 16}, a.Apply(func(x int) int { return x * x }).Items())
	require.Equal(t, []int{1, 2, 3, 4}, a.Items(), "receiver unchanged")
}

func TestMatrix_Elementwise_Errors(t *testing.T) {
	t.Parallel()

	a := im(t, []int{1, 2, 3}, []int{4, 5, 6})
	tr := a.Transpose()

	require.False(t, a.SameSize(tr))
	require.False(t, a.SameSize(nil))
	_, err := a.Add(tr)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = a.Subtract(tr)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = a.Hadamard(nil)
	require.ErrorIs(t, err, dense.ErrNilArgument)
	_, err = a.ApplyPairwise(nil, a)
	require.ErrorIs(t, err, dense.ErrNilArgument)
}

func TestMatrix_Properties(t *testing.T) {
	t.Parallel()

	for m := range intMatrices(t) {
		sum, err := m.Add(m.AdditiveIdentity())
		require.NoError(t, err)
		require.True(t, sum.Equals(m))

		inv, err := m.Add(m.Negative())
		require.NoError(t, err)
		require.True(t, inv.Equals(m.AdditiveIdentity()))

		require.True(t, m.Transpose().Transpose().Equals(m))
		require.True(t, m.Slice(0, 0, 0, 0).Equals(m))
	}
}

func TestMatrix_ApplyOnRows(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2, 3}, []int{4, 5, 6})
	sums, err := m.ApplyOnRows(func(r *intRow) dense.Vec[int] {
		return iv(ring.Sum[int](ring.Int{}, r.Items()...))
	})
	require.NoError(t, err)
	require.True(t, sums.Equals(im(t, []int{6}, []int{15})))

	same, err := m.ApplyOnRows(func(r *intRow) dense.Vec[int] { return r })
	require.NoError(t, err)
	require.True(t, same.Equals(m))

	_, err = m.ApplyOnRows(func(r *intRow) dense.Vec[int] {
		if x, _ := r.At(0); x == 1 {
			return iv(1)
		}

		return iv(1, 2)
	})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	_, err = m.ApplyOnRows(func(*intRow) dense.Vec[int] { return nil })
	require.ErrorIs(t, err, dense.ErrNilArgument)
	_, err = m.ApplyOnRows(nil)
	require.ErrorIs(t, err, dense.ErrNilArgument)

	noRows, err := dense.NewMatrix(ring.Int{}, nil, 0, 3)
	require.NoError(t, err)
	kept, err := noRows.ApplyOnRows(func(*intRow) dense.Vec[int] { return iv(1) })
	require.NoError(t, err)
	require.Same(t, noRows, kept)
}

func TestMatrix_ApplyOnColumns(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2, 3}, []int{4, 5, 6})
	sums, err := m.ApplyOnColumns(func(c *intCol) dense.Vec[int] {
		return iv(ring.Sum[int](ring.Int{}, c.Items()...))
	})
	require.NoError(t, err)
	require.True(t, sums.Equals(im(t, []int{5, 7, 9})))

	flipped, err := m.ApplyOnColumns(func(c *intCol) dense.Vec[int] {
		return hideVec{c.Slice(1, 1)}
	})
	require.NoError(t, err)
	require.True(t, flipped.Equals(im(t, []int{4, 5, 6}, []int{1, 2, 3})))

	var typedNil *intVector
	_, err = m.ApplyOnColumns(func(*intCol) dense.Vec[int] { return typedNil })
	require.ErrorIs(t, err, dense.ErrNilArgument)

	_, err = m.ApplyOnColumns(func(c *intCol) dense.Vec[int] {
		if x, _ := c.At(0); x == 2 {
			return iv()
		}

		return c
	})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	noCols, err := dense.NewMatrix(ring.Int{}, nil, 2, 0)
	require.NoError(t, err)
	kept, err := noCols.ApplyOnColumns(func(*intCol) dense.Vec[int] { return iv(1) })
	require.NoError(t, err)
	require.Same(t, noCols, kept)
}

func TestMatrix_Slice(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
	cases := []struct {
		name                           string
		rowFrom, rowTo, colFrom, colTo int
		want                           [][]int
	}{
		{"window", 0, 2, 1, 3, [][]int{{2, 3}, {5, 6}}},
		{"wraps both axes", 2, 1, 2, 1, [][]int{{9, 7}, {3, 1}}},
		{"whole", 0, 0, 0, 0, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{"single cell", 1, 2, 1, 2, [][]int{{5}}},
		{"rows rotate", 1, 1, 0, 1, [][]int{{4}, {7}, {1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Slice(tc.rowFrom, tc.rowTo, tc.colFrom, tc.colTo)
			require.True(t, got.Equals(im(t, tc.want...)), "got\n%v", got)
		})
	}

	empty, err := dense.NewMatrix(ring.Int{}, nil, 0, 4)
	require.NoError(t, err)
	require.Same(t, empty, empty.Slice(1, 2, 3, 4))
}

func TestMatrix_Transpose(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2, 3}, []int{4, 5, 6})
	tr := m.Transpose()
	require.True(t, tr.Equals(im(t, []int{1, 4}, []int{2, 5}, []int{3, 6})))

	wide, err := dense.NewMatrix(ring.Int{}, nil, 0, 3)
	require.NoError(t, err)
	tall := wide.Transpose()
	require.Equal(t, 3, tall.RowCount())
	require.Equal(t, 0, tall.ColumnCount())
}

func TestMatrix_MulVec(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2}, []int{3, 4})
	got, err := m.MulVec(iv(5, 6))
	require.NoError(t, err)
	require.Equal(t, []int{17, 39}, got.Items())

	slow, err := m.MulVec(hideVec{iv(5, 6)})
	require.NoError(t, err)
	require.True(t, slow.Equals(got))

	viaMatrix, err := m.Multiply(iv(5, 6).AsColumn().AsMatrix())
	require.NoError(t, err)
	require.True(t, viaMatrix.Equals(got.AsMatrix()))

	_, err = m.MulVec(iv(1, 2, 3))
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = m.MulVec(nil)
	require.ErrorIs(t, err, dense.ErrNilArgument)
}

func TestMatrix_EqualsAndString(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2}, []int{3, 4})
	require.True(t, m.Equals(hideGrid{im(t, []int{1, 2}, []int{3, 4})}))
	require.False(t, m.Equals(im(t, []int{1, 2}, []int{3, 5})))
	require.False(t, m.Equals(im(t, []int{1, 2, 3, 4})))
	require.False(t, m.Equals(nil))

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
	empty, err := dense.NewMatrix(ring.Int{}, nil, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "", empty.String())
}

func TestMatrix_DoAndValues(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2}, []int{3, 4})
	require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(m.Values()))

	var seen [][3]int
	m.Do(func(i, j, v int) bool {
		seen = append(seen, [3]int{i, j, v})

		return v < 3
	})
	require.Equal(t, [][3]int{{0, 0, 1}, {0, 1, 2}, {1, 0, 3}}, seen)
}

func TestZerosIdentity(t *testing.T) {
	t.Parallel()

	z, err := dense.Zeros[int](ring.Int{}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0}, z.Items())

	id, err := dense.Identity[int](ring.Int{}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Items())

	_, err = dense.Identity[int](ring.Int{}, -1)
	require.ErrorIs(t, err, dense.ErrBadShape)
	_, err = dense.Zeros[int](ring.Int{}, 2, math.MaxInt)
	require.ErrorIs(t, err, dense.ErrBadShape)
}

func TestReductions(t *testing.T) {
	t.Parallel()

	m := im(t, []int{1, 2, 3}, []int{4, 5, 6})
	require.Equal(t, []int{6, 15}, dense.RowSums(m).Items())
	require.Equal(t, []int{5, 7, 9}, dense.ColumnSums(m).Items())

	_, err := dense.Trace(m)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	tr, err := dense.Trace(im(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9}))
	require.NoError(t, err)
	require.Equal(t, 15, tr)
}

// Package dense offers immutable, ring-parameterized vectors and matrices.
//
// The dense package provides:
//
//   - Vector: a fixed-length sequence with element-wise ring arithmetic,
//     inner product and circular slicing.
//   - Matrix: a row-major rows×cols grid with element-wise arithmetic,
//     matrix product, row/column maps, circular sub-matrix extraction and
//     transpose.
//   - RowVector and ColumnVector: oriented vectors with explicit, lossless
//     conversions to 1×N and N×1 matrices.
//
// Every container carries the ring value it computes with (see package ring),
// so the same code serves int, float64, *big.Int, decimal.Decimal, integers
// modulo n or any type registered at run time. Nothing is ever written after
// construction: operations return new containers and are safe for concurrent
// use.
//
// Binary operations accept the read-only Vec and Grid interfaces. Operands
// that are themselves dense-backed are read straight from their backing
// slice; anything else goes through At.
//
// Failures (shape, index, nil operand) are reported as errors wrapping the
// sentinels in errors.go; nothing panics on bad input.
//
//	v := dense.NewVector(ring.Int{}, []int{1, 2, 3})
//	w := dense.NewVector(ring.Int{}, []int{4, 5, 6})
//	sum, _ := v.Add(w)          // [5, 7, 9]
//	dot, _ := v.InnerProduct(w) // 32
package dense

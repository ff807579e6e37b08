// Package ringalg is an immutable, dense linear-algebra toolkit that works
// over any scalar type with ring arithmetic: machine integers, floats with a
// tolerance, complex numbers, *big.Int, *big.Rat, decimal.Decimal, integers
// modulo n, or your own type registered at run time.
//
// What is inside?
//
//	ring/    ring capability interfaces, concrete scalar rings, the set-once runtime registry
//	dense/   Vector, Matrix, RowVector, ColumnVector: immutable, ring-parameterized, error-returning
//	gen/     seeded random vectors and matrices for property tests
//	bridge/  float64 conversions to and from gonum's mat package
//
// Why?
//
//   - One implementation of Add, Multiply, InnerProduct and friends for every
//     scalar type; the ring is a value carried by the container.
//   - Nothing mutates after construction, so containers are safe to share
//     between goroutines.
//   - Bad shapes and indices come back as wrapped sentinel errors, never panics.
//
// Quick example:
//
//	a, _ := dense.MatrixFromRows(ring.Int{}, [][]int{{1, 2}, {3, 4}})
//	b, _ := dense.MatrixFromRows(ring.Int{}, [][]int{{5, 6}, {7, 8}})
//	p, _ := a.Multiply(b) // [19, 22] [43, 50]
//
// See examples/ for complete programs.
//
//	go get github.com/katalvlaran/ringalg
package ringalg

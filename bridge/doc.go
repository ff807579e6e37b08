// Package bridge converts between dense float64 containers and gonum's mat
// package.
//
// Conversions copy in both directions so neither side can observe the other's
// writes: gonum matrices are mutable, dense containers are not. Gonum forbids
// zero-length dimensions, so converting an empty vector or a matrix with zero
// rows or columns fails with ErrEmpty.
//
// AsGrid and AsVec go the other way without copying: they present a gonum
// value as a read-only dense operand for Add, Multiply, InnerProduct and the
// like. The caller must not mutate the gonum value while such an operation runs.
package bridge

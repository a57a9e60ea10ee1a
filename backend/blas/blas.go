// Package blas provides the vendor compute backend backed by gonum's
// BLAS kernels.
//
// Each operation is a 1:1 translation onto one BLAS routine (dot, axpy,
// scal, nrm2, gemv, gemm). Worth pinning for large operands; for mixed
// sizes prefer backend/auto, which falls back to native below the
// configured thresholds.
package blas

import (
	internalblas "github.com/unic0rn9k/slas/internal/backend/blas"
	"github.com/unic0rn9k/slas/internal/core"
)

// Backend is the gonum-BLAS-backed compute backend.
type Backend[T core.Scalar] = internalblas.Backend[T]

// Compile-time check that Backend implements slas.Backend.
var _ core.Backend[float64] = (*Backend[float64])(nil)

// New creates a blas backend.
func New[T core.Scalar]() *Backend[T] {
	return internalblas.New[T]()
}

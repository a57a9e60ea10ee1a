// Package blas implements the vendor compute backend by delegating to
// gonum's BLAS kernels.
//
// The adapter is a 1:1 translation: each operation maps onto exactly one
// BLAS routine (dot, axpy, scal, nrm2, gemv, gemm) with row-major
// leading-dimension and stride parameters. Correctness of the kernels
// themselves is gonum's contract; the adapter only arranges arguments.
package blas

import (
	"fmt"
	"unsafe"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/unic0rn9k/slas/internal/core"
)

// Verify that Backend implements core.Backend.
var _ core.Backend[float64] = (*Backend[float64])(nil)

// Backend is the gonum-BLAS-backed compute backend. Worth pinning for
// large operands, where the optimized kernels amortize their call
// overhead.
type Backend[T core.Scalar] struct{}

// New creates a blas backend.
func New[T core.Scalar]() *Backend[T] {
	return &Backend[T]{}
}

// Name returns the backend name.
func (*Backend[T]) Name() string { return "blas" }

// is32 reports whether T is a 32-bit scalar. The Scalar constraint
// admits named float types, so discrimination goes by size rather than
// a type switch on the base types.
func is32[T core.Scalar]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// f32 reinterprets x as []float32 without copying.
func f32[T core.Scalar](x []T) []float32 {
	if len(x) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&x[0])), len(x))
}

// f64 reinterprets x as []float64 without copying.
func f64[T core.Scalar](x []T) []float64 {
	if len(x) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&x[0])), len(x))
}

func vec32(x []float32) blas32.Vector { return blas32.Vector{N: len(x), Inc: 1, Data: x} }
func vec64(x []float64) blas64.Vector { return blas64.Vector{N: len(x), Inc: 1, Data: x} }

// Dot delegates to sdot/ddot.
func (*Backend[T]) Dot(a, b []T) T {
	if len(a) != len(b) {
		panic(fmt.Sprintf("blas: dot length mismatch %d vs %d", len(a), len(b)))
	}
	if is32[T]() {
		return T(blas32.Dot(vec32(f32(a)), vec32(f32(b))))
	}
	return T(blas64.Dot(vec64(f64(a)), vec64(f64(b))))
}

// Axpy delegates to saxpy/daxpy: y += alpha*x.
func (*Backend[T]) Axpy(alpha T, x, y []T) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("blas: axpy length mismatch %d vs %d", len(x), len(y)))
	}
	if is32[T]() {
		blas32.Axpy(float32(alpha), vec32(f32(x)), vec32(f32(y)))
		return
	}
	blas64.Axpy(float64(alpha), vec64(f64(x)), vec64(f64(y)))
}

// Scale delegates to sscal/dscal.
func (*Backend[T]) Scale(alpha T, x []T) {
	if is32[T]() {
		blas32.Scal(float32(alpha), vec32(f32(x)))
		return
	}
	blas64.Scal(float64(alpha), vec64(f64(x)))
}

// Add is composed as copy + axpy; BLAS has no element-wise add of its
// own.
func (b *Backend[T]) Add(dst, a, c []T) {
	if len(a) != len(c) || len(dst) != len(a) {
		panic(fmt.Sprintf("blas: add length mismatch %d/%d/%d", len(dst), len(a), len(c)))
	}
	copy(dst, a)
	b.Axpy(1, c, dst)
}

// Norm delegates to snrm2/dnrm2.
func (*Backend[T]) Norm(x []T) T {
	if is32[T]() {
		return T(blas32.Nrm2(vec32(f32(x))))
	}
	return T(blas64.Nrm2(vec64(f64(x))))
}

// Normalize composes nrm2 and scal. A zero vector is left untouched.
func (b *Backend[T]) Normalize(x []T) {
	n := b.Norm(x)
	if n == 0 {
		return
	}
	b.Scale(1/n, x)
}

// MatVec delegates to sgemv/dgemv with beta=0.
func (*Backend[T]) MatVec(dst, a, x []T, m, n int, trans bool) {
	if len(a) != m*n {
		panic(fmt.Sprintf("blas: matvec matrix length %d does not match %dx%d", len(a), m, n))
	}
	t := blas.NoTrans
	if trans {
		t = blas.Trans
	}
	if is32[T]() {
		ga := blas32.General{Rows: m, Cols: n, Stride: n, Data: f32(a)}
		blas32.Gemv(t, 1, ga, vec32(f32(x)), 0, vec32(f32(dst)))
		return
	}
	ga := blas64.General{Rows: m, Cols: n, Stride: n, Data: f64(a)}
	blas64.Gemv(t, 1, ga, vec64(f64(x)), 0, vec64(f64(dst)))
}

// MatMul delegates to sgemm/dgemm with beta=0. Operands are passed in
// their physical row-major layout; the transpose flags become the gemm
// op arguments, which is what makes the lazy transpose free.
func (*Backend[T]) MatMul(dst, a, b []T, m, n, k int, transA, transB bool) {
	if len(dst) != m*n {
		panic(fmt.Sprintf("blas: matmul dst length %d does not match %dx%d", len(dst), m, n))
	}
	if len(a) != m*k || len(b) != k*n {
		panic(fmt.Sprintf("blas: matmul operand lengths %d/%d for (%d,%d,%d)", len(a), len(b), m, n, k))
	}
	tA, tB := blas.NoTrans, blas.NoTrans
	aRows, aCols := m, k
	if transA {
		tA = blas.Trans
		aRows, aCols = k, m
	}
	bRows, bCols := k, n
	if transB {
		tB = blas.Trans
		bRows, bCols = n, k
	}
	if is32[T]() {
		ga := blas32.General{Rows: aRows, Cols: aCols, Stride: aCols, Data: f32(a)}
		gb := blas32.General{Rows: bRows, Cols: bCols, Stride: bCols, Data: f32(b)}
		gc := blas32.General{Rows: m, Cols: n, Stride: n, Data: f32(dst)}
		blas32.Gemm(tA, tB, 1, ga, gb, 0, gc)
		return
	}
	ga := blas64.General{Rows: aRows, Cols: aCols, Stride: aCols, Data: f64(a)}
	gb := blas64.General{Rows: bRows, Cols: bCols, Stride: bCols, Data: f64(b)}
	gc := blas64.General{Rows: m, Cols: n, Stride: n, Data: f64(dst)}
	blas64.Gemm(tA, tB, 1, ga, gb, 0, gc)
}

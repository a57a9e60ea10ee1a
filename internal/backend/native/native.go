// Package native implements the self-contained pure-Go compute backend.
//
// The kernels are tuned for small operands: 4-way unrolled inner loops
// that the compiler can keep in registers, and no call overhead beyond
// the interface dispatch. For large operands the blas backend wins; the
// auto backend picks between the two by size.
package native

import (
	"fmt"
	"math"

	"github.com/unic0rn9k/slas/internal/core"
)

// Verify that Backend implements core.Backend.
var _ core.Backend[float32] = (*Backend[float32])(nil)

// Backend is the native pure-Go compute backend.
type Backend[T core.Scalar] struct{}

// New creates a native backend.
func New[T core.Scalar]() *Backend[T] {
	return &Backend[T]{}
}

// Name returns the backend name.
func (*Backend[T]) Name() string { return "native" }

// Dot returns the dot product of a and b.
// The loop is unrolled 4-wide with independent accumulators so the
// partial sums pipeline instead of serializing on one register.
func (*Backend[T]) Dot(a, b []T) T {
	if len(a) != len(b) {
		panic(fmt.Sprintf("native: dot length mismatch %d vs %d", len(a), len(b)))
	}
	var s0, s1, s2, s3 T
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	sum := s0 + s1 + s2 + s3
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Axpy computes y += alpha*x.
func (*Backend[T]) Axpy(alpha T, x, y []T) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("native: axpy length mismatch %d vs %d", len(x), len(y)))
	}
	n := len(x)
	i := 0
	for ; i+4 <= n; i += 4 {
		y[i] += alpha * x[i]
		y[i+1] += alpha * x[i+1]
		y[i+2] += alpha * x[i+2]
		y[i+3] += alpha * x[i+3]
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

// Scale computes x *= alpha in place.
func (*Backend[T]) Scale(alpha T, x []T) {
	for i := range x {
		x[i] *= alpha
	}
}

// Add computes dst = a + b element-wise.
func (*Backend[T]) Add(dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(fmt.Sprintf("native: add length mismatch %d/%d/%d", len(dst), len(a), len(b)))
	}
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Norm returns the Euclidean norm of x. The squares accumulate in
// float64 to limit cancellation for float32 inputs.
func (b *Backend[T]) Norm(x []T) T {
	var sum float64
	for _, v := range x {
		f := float64(v)
		sum += f * f
	}
	return T(math.Sqrt(sum))
}

// Normalize scales x to unit Euclidean norm in place. A zero vector is
// left untouched.
func (b *Backend[T]) Normalize(x []T) {
	n := b.Norm(x)
	if n == 0 {
		return
	}
	b.Scale(1/n, x)
}

// MatVec computes dst = A*x, or dst = Aᵀ*x when trans is set, for an
// m-by-n row-major matrix. The no-transpose path is a dot product per
// row; the transposed path accumulates row-wise to keep the memory walk
// sequential over a.
func (b *Backend[T]) MatVec(dst, a, x []T, m, n int, trans bool) {
	if len(a) != m*n {
		panic(fmt.Sprintf("native: matvec matrix length %d does not match %dx%d", len(a), m, n))
	}
	if trans {
		if len(x) != m || len(dst) != n {
			panic(fmt.Sprintf("native: matvec trans operand lengths %d/%d for %dx%d", len(x), len(dst), m, n))
		}
		for j := range dst {
			dst[j] = 0
		}
		for i := 0; i < m; i++ {
			b.Axpy(x[i], a[i*n:(i+1)*n], dst)
		}
		return
	}
	if len(x) != n || len(dst) != m {
		panic(fmt.Sprintf("native: matvec operand lengths %d/%d for %dx%d", len(x), len(dst), m, n))
	}
	for i := 0; i < m; i++ {
		dst[i] = b.Dot(a[i*n:(i+1)*n], x)
	}
}

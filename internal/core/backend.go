package core

// Backend defines the operation set every compute implementation must
// supply. All slices are contiguous; matrices are row-major.
//
// Implementations:
//   - native: pure Go, tuned for small operands (internal/backend/native)
//   - blas:   gonum BLAS kernels for large operands (internal/backend/blas)
//   - auto:   threshold dispatcher over the two (internal/backend/auto)
//
// Outputs across backends must agree within floating-point tolerance for
// identical inputs: 1e-5 relative for float32, 1e-12 for float64. This is
// a correctness contract, not a convenience.
//
// Binding a concrete backend type as the B parameter of Vector, Matrix or
// Tensor pins it statically: calls resolve with no runtime branch.
type Backend[T Scalar] interface {
	// Dot returns the dot product of a and b. Lengths must match.
	Dot(a, b []T) T

	// Axpy computes y += alpha*x.
	Axpy(alpha T, x, y []T)

	// Scale computes x *= alpha in place.
	Scale(alpha T, x []T)

	// Add computes dst = a + b element-wise.
	Add(dst, a, b []T)

	// Norm returns the Euclidean norm of x.
	Norm(x []T) T

	// Normalize scales x in place to unit Euclidean norm.
	// x is left untouched when its norm is zero.
	Normalize(x []T)

	// MatVec computes dst = A*x (or dst = Aᵀ*x when trans is set) for an
	// m-by-n row-major matrix a.
	MatVec(dst, a, x []T, m, n int, trans bool)

	// MatMul computes dst = op(A)*op(B) where op is identity or
	// transpose per the flags. op(A) is m-by-k, op(B) is k-by-n and dst
	// is m-by-n, all row-major. The operands are passed in their
	// physical layout; the flags carry the logical orientation.
	MatMul(dst, a, b []T, m, n, k int, transA, transB bool)

	// Name identifies the backend in logs and benchmarks.
	Name() string
}

// Thresholds maps an operation class to the minimum element count above
// which the default dispatch prefers the vendor backend. Thresholds are
// independent per class; they are resolved once (see internal/config) and
// read-only afterwards.
//
// The size measure per class: Dot and Norm use the vector length, MatVec
// uses m*n, MatMul uses m*n*k.
type Thresholds struct {
	Dot    int
	Norm   int
	MatVec int
	MatMul int
}

// DefaultThresholds returns the built-in dispatch thresholds. The dot
// crossover of 750 elements is where vendor-kernel call overhead starts
// to pay for itself on typical hardware.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Dot:    750,
		Norm:   750,
		MatVec: 10_000,
		MatMul: 32_768,
	}
}

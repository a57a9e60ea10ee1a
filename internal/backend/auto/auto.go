// Package auto implements the default-dispatch backend: per operation
// class it routes small operands to the native backend and large ones to
// the blas backend, using the configured size thresholds.
//
// The policy applies only when a container is bound to this backend.
// Pinning a concrete backend type instead always wins over the
// thresholds; auto never second-guesses an explicit choice.
package auto

import (
	"github.com/unic0rn9k/slas/internal/backend/blas"
	"github.com/unic0rn9k/slas/internal/backend/native"
	"github.com/unic0rn9k/slas/internal/core"
)

// Verify that Backend implements core.Backend.
var _ core.Backend[float32] = (*Backend[float32])(nil)

// Backend holds the two concrete implementations and the dispatch
// thresholds. The zero value is not usable; construct with New or
// NewWith.
type Backend[T core.Scalar] struct {
	small core.Backend[T] // below threshold
	large core.Backend[T] // at or above threshold
	th    core.Thresholds
}

// New creates a dispatching backend over native and blas with the
// built-in thresholds.
func New[T core.Scalar]() *Backend[T] {
	return NewWith[T](native.New[T](), blas.New[T](), core.DefaultThresholds())
}

// NewThresholds creates a dispatching backend over native and blas with
// the given thresholds, typically resolved by internal/config.
func NewThresholds[T core.Scalar](th core.Thresholds) *Backend[T] {
	return NewWith[T](native.New[T](), blas.New[T](), th)
}

// NewWith creates a dispatching backend over arbitrary small and large
// implementations. Tests use this to inject counting wrappers.
func NewWith[T core.Scalar](small, large core.Backend[T], th core.Thresholds) *Backend[T] {
	return &Backend[T]{small: small, large: large, th: th}
}

// Name returns the backend name.
func (b *Backend[T]) Name() string {
	return "auto(" + b.small.Name() + "|" + b.large.Name() + ")"
}

// Thresholds returns the dispatch thresholds in use.
func (b *Backend[T]) Thresholds() core.Thresholds { return b.th }

// pick routes by element count: strictly below the class threshold goes
// to the small backend, at or above goes to the large one.
func (b *Backend[T]) pick(n, threshold int) core.Backend[T] {
	if n >= threshold {
		return b.large
	}
	return b.small
}

func (b *Backend[T]) Dot(x, y []T) T {
	return b.pick(len(x), b.th.Dot).Dot(x, y)
}

// Axpy and Scale follow the dot threshold: same O(n) stride-1 profile.
func (b *Backend[T]) Axpy(alpha T, x, y []T) {
	b.pick(len(x), b.th.Dot).Axpy(alpha, x, y)
}

func (b *Backend[T]) Scale(alpha T, x []T) {
	b.pick(len(x), b.th.Dot).Scale(alpha, x)
}

func (b *Backend[T]) Add(dst, x, y []T) {
	b.pick(len(x), b.th.Dot).Add(dst, x, y)
}

func (b *Backend[T]) Norm(x []T) T {
	return b.pick(len(x), b.th.Norm).Norm(x)
}

func (b *Backend[T]) Normalize(x []T) {
	b.pick(len(x), b.th.Norm).Normalize(x)
}

func (b *Backend[T]) MatVec(dst, a, x []T, m, n int, trans bool) {
	b.pick(m*n, b.th.MatVec).MatVec(dst, a, x, m, n, trans)
}

func (b *Backend[T]) MatMul(dst, x, y []T, m, n, k int, transA, transB bool) {
	b.pick(m*n*k, b.th.MatMul).MatMul(dst, x, y, m, n, k, transA, transB)
}

package core

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend[float32] = (*MockBackend[float32])(nil)

// MockBackend is a simple backend for testing. Every operation is
// implemented naively for correctness verification, with no regard for
// performance.
type MockBackend[T Scalar] struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend[T Scalar]() *MockBackend[T] {
	return &MockBackend[T]{}
}

// Name returns the backend name.
func (m *MockBackend[T]) Name() string { return "mock" }

// Dot returns the dot product of a and b.
func (m *MockBackend[T]) Dot(a, b []T) T {
	if len(a) != len(b) {
		panic(fmt.Sprintf("dot: length mismatch %d vs %d", len(a), len(b)))
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Axpy computes y += alpha*x.
func (m *MockBackend[T]) Axpy(alpha T, x, y []T) {
	for i := range x {
		y[i] += alpha * x[i]
	}
}

// Scale computes x *= alpha.
func (m *MockBackend[T]) Scale(alpha T, x []T) {
	for i := range x {
		x[i] *= alpha
	}
}

// Add computes dst = a + b.
func (m *MockBackend[T]) Add(dst, a, b []T) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Norm returns the Euclidean norm of x.
func (m *MockBackend[T]) Norm(x []T) T {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return T(math.Sqrt(sum))
}

// Normalize scales x to unit norm.
func (m *MockBackend[T]) Normalize(x []T) {
	n := m.Norm(x)
	if n == 0 {
		return
	}
	m.Scale(1/n, x)
}

// MatVec computes dst = op(A)*x naively.
func (m *MockBackend[T]) MatVec(dst, a, x []T, rows, cols int, trans bool) {
	if trans {
		for j := range dst {
			dst[j] = 0
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dst[j] += a[i*cols+j] * x[i]
			}
		}
		return
	}
	for i := 0; i < rows; i++ {
		var sum T
		for j := 0; j < cols; j++ {
			sum += a[i*cols+j] * x[j]
		}
		dst[i] = sum
	}
}

// MatMul computes dst = op(A)*op(B) naively.
func (m *MockBackend[T]) MatMul(dst, a, b []T, mm, n, k int, transA, transB bool) {
	at := func(i, l int) T {
		if transA {
			return a[l*mm+i]
		}
		return a[i*k+l]
	}
	bt := func(l, j int) T {
		if transB {
			return b[j*k+l]
		}
		return b[l*n+j]
	}
	for i := 0; i < mm; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for l := 0; l < k; l++ {
				sum += at(i, l) * bt(l, j)
			}
			dst[i*n+j] = sum
		}
	}
}

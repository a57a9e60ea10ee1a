package slas

import (
	"unsafe"

	"github.com/unic0rn9k/slas/internal/core"
)

// Scalar is the element-type constraint for all containers.
type Scalar = core.Scalar

// Backend is the operation set every compute backend implements.
type Backend[T Scalar] = core.Backend[T]

// Thresholds configures the auto backend's size-based dispatch.
type Thresholds = core.Thresholds

// DefaultThresholds returns the built-in dispatch thresholds.
func DefaultThresholds() Thresholds { return core.DefaultThresholds() }

// Container is the copy-on-write storage unit behind every shape type.
type Container[T Scalar] = core.Container[T]

// Vector is a fixed-length copy-on-write vector bound to a backend.
type Vector[T Scalar, B Backend[T]] = core.Vector[T, B]

// Matrix is a fixed-shape row-major matrix with lazy transpose.
type Matrix[T Scalar, B Backend[T]] = core.Matrix[T, B]

// Tensor is a fixed-shape arbitrary-rank tensor with columns-first
// indexing.
type Tensor[T Scalar, B Backend[T]] = core.Tensor[T, B]

// Counting wraps a backend with per-operation call counters.
type Counting[T Scalar] = core.Counting[T]

// NewCounting wraps inner with call counting.
func NewCounting[T Scalar](inner Backend[T]) *Counting[T] {
	return core.NewCounting(inner)
}

// Own creates an owned vector from the given values.
func Own[T Scalar, B Backend[T]](backend B, values ...T) *Vector[T, B] {
	return core.VecOwn(backend, values...)
}

// FromSlice creates an owned vector holding a copy of src.
func FromSlice[T Scalar, B Backend[T]](backend B, src []T) *Vector[T, B] {
	return core.VecFromSlice(backend, src)
}

// Zeros creates an owned zero vector of length n.
func Zeros[T Scalar, B Backend[T]](backend B, n int) *Vector[T, B] {
	return core.VecZeros[T](backend, n)
}

// Borrow creates a vector aliasing src without copying. The source must
// stay valid and unaliased-for-write while the vector stays borrowed.
func Borrow[T Scalar, B Backend[T]](backend B, src []T) *Vector[T, B] {
	return core.VecBorrow(backend, src)
}

// BorrowPtr creates a vector borrowing n scalars at ptr. This is the
// unchecked escape hatch; see the package documentation for the
// provenance contract.
func BorrowPtr[T Scalar, B Backend[T]](backend B, ptr unsafe.Pointer, n int) *Vector[T, B] {
	return core.VecBorrowPtr[T](backend, ptr, n)
}

// NewMatrix creates an owned rows-by-cols matrix from row-major data.
func NewMatrix[T Scalar, B Backend[T]](backend B, rows, cols int, data []T) *Matrix[T, B] {
	return core.MatFromSlice(backend, rows, cols, data)
}

// MatrixZeros creates an owned zero matrix.
func MatrixZeros[T Scalar, B Backend[T]](backend B, rows, cols int) *Matrix[T, B] {
	return core.MatZeros[T](backend, rows, cols)
}

// BorrowMatrix creates a matrix aliasing row-major data without copying.
func BorrowMatrix[T Scalar, B Backend[T]](backend B, rows, cols int, data []T) *Matrix[T, B] {
	return core.MatBorrow(backend, rows, cols, data)
}

// NewTensor creates an owned tensor with the given extents from flat
// data.
func NewTensor[T Scalar, B Backend[T]](backend B, extents []int, data []T) *Tensor[T, B] {
	return core.TenFromSlice(backend, extents, data)
}

// TensorZeros creates an owned zero tensor with the given extents.
func TensorZeros[T Scalar, B Backend[T]](backend B, extents []int) *Tensor[T, B] {
	return core.TenZeros[T](backend, extents)
}

// BorrowTensor creates a tensor aliasing flat data without copying.
func BorrowTensor[T Scalar, B Backend[T]](backend B, extents []int, data []T) *Tensor[T, B] {
	return core.TenBorrow(backend, extents, data)
}

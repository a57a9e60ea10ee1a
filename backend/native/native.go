// Package native provides the pure Go compute backend.
//
// It is self-contained, allocation-free and tuned for small operands,
// where inlined unrolled loops beat the call overhead of the vendor
// kernels. Pin it as the B type parameter to bypass threshold dispatch:
//
//	be := native.New[float32]()
//	v := slas.Own(be, 1, 2, 3)
package native

import (
	internalnative "github.com/unic0rn9k/slas/internal/backend/native"
	"github.com/unic0rn9k/slas/internal/core"
)

// Backend is the native pure-Go compute backend.
type Backend[T core.Scalar] = internalnative.Backend[T]

// Compile-time check that Backend implements slas.Backend.
var _ core.Backend[float32] = (*Backend[float32])(nil)

// New creates a native backend.
func New[T core.Scalar]() *Backend[T] {
	return internalnative.New[T]()
}

// Package auto provides the default-dispatch backend: native kernels
// below the per-operation size thresholds, gonum BLAS at or above them.
//
//	be := auto.FromEnv[float32]() // thresholds from SLAS_* variables
//	v := slas.Own(be, data...)
//
// An explicitly pinned backend (backend/native, backend/blas) always
// overrides this policy; auto only decides for containers bound to it.
package auto

import (
	internalauto "github.com/unic0rn9k/slas/internal/backend/auto"
	"github.com/unic0rn9k/slas/internal/config"
	"github.com/unic0rn9k/slas/internal/core"
)

// Backend dispatches between native and blas by operand size.
type Backend[T core.Scalar] = internalauto.Backend[T]

// Compile-time check that Backend implements slas.Backend.
var _ core.Backend[float32] = (*Backend[float32])(nil)

// New creates a dispatching backend with the built-in thresholds.
func New[T core.Scalar]() *Backend[T] {
	return internalauto.New[T]()
}

// NewThresholds creates a dispatching backend with explicit thresholds.
func NewThresholds[T core.Scalar](th core.Thresholds) *Backend[T] {
	return internalauto.NewThresholds[T](th)
}

// NewWith creates a dispatching backend over arbitrary small and large
// implementations, for instrumentation and testing.
func NewWith[T core.Scalar](small, large core.Backend[T], th core.Thresholds) *Backend[T] {
	return internalauto.NewWith(small, large, th)
}

// FromEnv creates a dispatching backend with thresholds resolved from
// the SLAS_* environment variables, panicking on invalid values.
func FromEnv[T core.Scalar]() *Backend[T] {
	return internalauto.NewThresholds[T](config.MustLoad())
}

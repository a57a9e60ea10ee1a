// Package core provides the storage and shape layer of slas: copy-on-write
// containers over owned or borrowed memory, the Backend interface all
// compute implementations satisfy, and the Vector/Matrix/Tensor types
// built on top of them.
package core

// Scalar is the constraint for supported element types.
// All backend operations are defined for 32- and 64-bit floats.
type Scalar interface {
	~float32 | ~float64
}

package core

import (
	"fmt"
	"unsafe"
)

// Vector is a fixed-length copy-on-write vector bound to a compute
// backend B. The binding is part of the type: using a concrete backend
// type pins every operation statically, while auto.Backend gives the
// size-threshold default policy.
//
// Example:
//
//	be := native.New[float32]()
//	a := core.VecOwn(be, 1, 2, 3.2)
//	b := core.VecOwn(be, 3, 0.4, 5)
//	sum := a.Dot(b)
type Vector[T Scalar, B Backend[T]] struct {
	cow     *Container[T]
	backend B
}

// VecOwn creates an owned vector from the given values.
func VecOwn[T Scalar, B Backend[T]](backend B, values ...T) *Vector[T, B] {
	return &Vector[T, B]{cow: Own(values...), backend: backend}
}

// VecFromSlice creates an owned vector holding a copy of src.
func VecFromSlice[T Scalar, B Backend[T]](backend B, src []T) *Vector[T, B] {
	return &Vector[T, B]{cow: FromSlice(src), backend: backend}
}

// VecZeros creates an owned zero vector of length n.
func VecZeros[T Scalar, B Backend[T]](backend B, n int) *Vector[T, B] {
	return &Vector[T, B]{cow: Zeros[T](n), backend: backend}
}

// VecBorrow creates a vector borrowing src without copying.
// See Borrow for the provenance contract.
func VecBorrow[T Scalar, B Backend[T]](backend B, src []T) *Vector[T, B] {
	return &Vector[T, B]{cow: Borrow(src), backend: backend}
}

// VecBorrowPtr creates a vector borrowing n scalars at ptr.
// See BorrowPtr for the provenance contract.
func VecBorrowPtr[T Scalar, B Backend[T]](backend B, ptr unsafe.Pointer, n int) *Vector[T, B] {
	return &Vector[T, B]{cow: BorrowPtr[T](ptr, n), backend: backend}
}

// VecWrap binds an existing container to a backend without copying.
func VecWrap[T Scalar, B Backend[T]](backend B, c *Container[T]) *Vector[T, B] {
	return &Vector[T, B]{cow: c, backend: backend}
}

// Len returns the fixed element count.
func (v *Vector[T, B]) Len() int { return v.cow.Len() }

// At returns the element at index i without copying.
func (v *Vector[T, B]) At(i int) T { return v.cow.At(i) }

// Set writes the element at index i, triggering the one-time copy when
// the vector is still borrowed.
func (v *Vector[T, B]) Set(i int, val T) { v.cow.Set(i, val) }

// Data returns a read-only view of the current storage.
func (v *Vector[T, B]) Data() []T { return v.cow.Data() }

// MutData returns writable storage bypassing copy-on-write.
// See Container.MutData for the aliasing hazard.
func (v *Vector[T, B]) MutData() []T { return v.cow.MutData() }

// IsOwned reports whether the vector owns its storage.
func (v *Vector[T, B]) IsOwned() bool { return v.cow.IsOwned() }

// ForceOwned materializes owned storage unconditionally.
func (v *Vector[T, B]) ForceOwned() { v.cow.ForceOwned() }

// Container exposes the underlying copy-on-write container.
func (v *Vector[T, B]) Container() *Container[T] { return v.cow }

// Backend returns the bound compute backend.
func (v *Vector[T, B]) Backend() B { return v.backend }

// Dot returns the dot product with other. Panics on length mismatch;
// lengths are part of construction, so a mismatch is a programmer error.
func (v *Vector[T, B]) Dot(other *Vector[T, B]) T {
	v.checkLen(other)
	return v.backend.Dot(v.cow.Data(), other.cow.Data())
}

// Add returns a new owned vector holding v + other element-wise.
func (v *Vector[T, B]) Add(other *Vector[T, B]) *Vector[T, B] {
	v.checkLen(other)
	out := VecZeros[T, B](v.backend, v.Len())
	v.backend.Add(out.cow.MutData(), v.cow.Data(), other.cow.Data())
	return out
}

// Axpy computes v += alpha*x in place, triggering copy-on-write.
func (v *Vector[T, B]) Axpy(alpha T, x *Vector[T, B]) {
	v.checkLen(x)
	v.backend.Axpy(alpha, x.cow.Data(), v.cow.MutOwned())
}

// Scale multiplies every element by alpha in place, triggering
// copy-on-write.
func (v *Vector[T, B]) Scale(alpha T) {
	v.backend.Scale(alpha, v.cow.MutOwned())
}

// Norm returns the Euclidean norm.
func (v *Vector[T, B]) Norm() T {
	return v.backend.Norm(v.cow.Data())
}

// Normalize scales the vector to unit norm in place, triggering
// copy-on-write.
func (v *Vector[T, B]) Normalize() {
	v.backend.Normalize(v.cow.MutOwned())
}

// String renders the elements, prefixing borrowed vectors with '&'.
func (v *Vector[T, B]) String() string {
	return v.cow.String()
}

func (v *Vector[T, B]) checkLen(other *Vector[T, B]) {
	if v.Len() != other.Len() {
		panic(fmt.Sprintf("vector: operand length mismatch %d vs %d", v.Len(), other.Len()))
	}
}

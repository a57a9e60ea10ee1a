package core

import (
	"fmt"
	"strings"
	"unsafe"
)

// storage is the two-case storage variant behind a Container: it either
// owns its elements or aliases memory owned by someone else.
type storage[T Scalar] interface {
	// data returns the backing elements. For a borrowed store this
	// aliases the source; for an owned store it is private to the
	// container.
	data() []T
}

// ownedStore owns a contiguous, fixed-length run of scalars.
// The buffer is allocated once at construction and never resized.
type ownedStore[T Scalar] struct {
	buf []T
}

func (s *ownedStore[T]) data() []T { return s.buf }

// borrowedStore aliases memory owned by someone else: an external slice,
// or a window of another container. Validity of externally referenced
// memory for the lifetime of the borrow is the caller's contract, not a
// checked one.
//
// A window re-resolves the parent's current storage on every access, so
// it keeps tracking the parent after the parent's own copy-on-write
// transition swaps its backing buffer.
type borrowedStore[T Scalar] struct {
	view   []T           // external borrow; nil parent
	parent *Container[T] // window borrow over parent's [off, off+n)
	off, n int
}

func (s *borrowedStore[T]) data() []T {
	if s.parent != nil {
		return s.parent.store.data()[s.off : s.off+s.n]
	}
	return s.view
}

// Container is a fixed-length copy-on-write run of scalars.
//
// A Container created with Borrow or BorrowPtr reads through the source
// with no copy until the first mutation, at which point the elements are
// copied into owned storage exactly once. The length is fixed for the
// container's entire lifetime.
//
// Containers are not safe for concurrent mutation; read-only sharing
// across goroutines is fine.
type Container[T Scalar] struct {
	store storage[T]
	owned bool
}

// Own creates an owned container from the given values. The values are
// copied, so later changes to the arguments are not observed.
func Own[T Scalar](values ...T) *Container[T] {
	buf := make([]T, len(values))
	copy(buf, values)
	return &Container[T]{store: &ownedStore[T]{buf: buf}, owned: true}
}

// FromSlice creates an owned container holding a copy of src.
func FromSlice[T Scalar](src []T) *Container[T] {
	return Own(src...)
}

// Zeros creates an owned zero-filled container of length n.
func Zeros[T Scalar](n int) *Container[T] {
	if n < 0 {
		panic(fmt.Sprintf("cow: negative length %d", n))
	}
	return &Container[T]{store: &ownedStore[T]{buf: make([]T, n)}, owned: true}
}

// Borrow creates a container aliasing src without copying. Reads go
// through src until the first mutation copies the elements out.
//
// The caller attests that src stays valid and is not mutated through
// another alias for as long as the container remains borrowed.
func Borrow[T Scalar](src []T) *Container[T] {
	return &Container[T]{store: &borrowedStore[T]{view: src}, owned: false}
}

// View creates a borrowed container over n elements of parent starting
// at off. Unlike Borrow, a view reads through the parent container
// itself rather than its current backing slice: the parent's writes
// inside the window stay visible even after the parent's own
// copy-on-write transition. The view's first write copies the window
// out under the standard contract.
func View[T Scalar](parent *Container[T], off, n int) *Container[T] {
	if off < 0 || n < 0 || off+n > parent.Len() {
		panic(fmt.Sprintf("cow: view [%d:%d) out of bounds for length %d", off, off+n, parent.Len()))
	}
	return &Container[T]{store: &borrowedStore[T]{parent: parent, off: off, n: n}, owned: false}
}

// BorrowPtr creates a borrowed container over n scalars starting at ptr.
//
// This is the unchecked escape hatch: no lifetime or aliasing guarantee
// exists beyond the caller's word. Violating it is undefined behavior,
// not a reported error.
func BorrowPtr[T Scalar](ptr unsafe.Pointer, n int) *Container[T] {
	return Borrow(unsafe.Slice((*T)(ptr), n))
}

// Len returns the fixed element count.
func (c *Container[T]) Len() int {
	return len(c.store.data())
}

// IsOwned reports whether the container owns its storage. The flag
// transitions false to true at most once and never reverts.
func (c *Container[T]) IsOwned() bool {
	return c.owned
}

// At returns the element at index i, reading through whichever storage
// case currently backs the container. Never copies.
func (c *Container[T]) At(i int) T {
	return c.store.data()[i]
}

// Data returns a read-only view of the current storage. For a borrowed
// container this aliases the source. Callers must not write through it;
// use MutData for that.
func (c *Container[T]) Data() []T {
	return c.store.data()
}

// Set writes v at index i, copying borrowed elements into owned storage
// first if needed.
func (c *Container[T]) Set(i int, v T) {
	c.materialize()
	c.store.data()[i] = v
}

// CopyFrom overwrites the container's elements with src.
// Panics if the lengths differ.
func (c *Container[T]) CopyFrom(src []T) {
	if len(src) != c.Len() {
		panic(fmt.Sprintf("cow: cannot copy %d elements into container of length %d", len(src), c.Len()))
	}
	c.materialize()
	copy(c.store.data(), src)
}

// MutData returns a writable reference into current storage, bypassing
// the copy-on-write machinery entirely.
//
// WARNING: writes through the returned slice are visible through every
// alias of a borrowed source. This is the deliberate opt-out of COW
// protection; use Set or MutOwned when isolation matters.
func (c *Container[T]) MutData() []T {
	return c.store.data()
}

// MutOwned triggers the copy-on-write transition if needed and returns
// the now-owned elements for writing.
func (c *Container[T]) MutOwned() []T {
	c.materialize()
	return c.store.data()
}

// ForceOwned materializes owned storage unconditionally. When the
// container is already owned this is a no-op preserving storage identity.
func (c *Container[T]) ForceOwned() {
	c.materialize()
}

// Clone returns an owned deep copy regardless of the receiver's state.
func (c *Container[T]) Clone() *Container[T] {
	return Own(c.store.data()...)
}

// materialize is the single copy trigger: if the container is borrowed,
// all elements are copied into fresh owned storage and the flag flips.
// Idempotent once owned.
func (c *Container[T]) materialize() {
	if c.owned {
		return
	}
	buf := make([]T, c.Len())
	copy(buf, c.store.data())
	c.store = &ownedStore[T]{buf: buf}
	c.owned = true
}

// String renders the elements, prefixing borrowed containers with '&'.
func (c *Container[T]) String() string {
	var sb strings.Builder
	if !c.owned {
		sb.WriteByte('&')
	}
	sb.WriteByte('[')
	for i, v := range c.store.data() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

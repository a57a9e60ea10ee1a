package core

import "fmt"

// Tensor is a fixed-shape copy-on-write tensor of arbitrary rank bound
// to a compute backend.
//
// Indexing is columns-first: the first index varies fastest in memory,
// so the flat offset of (i0, i1, ..., ik) is
// i0 + i1*e0 + i2*e0*e1 + ... This is the opposite convention from
// Matrix, which indexes rows-first; the asymmetry is deliberate and the
// rank-2 conversions account for it.
type Tensor[T Scalar, B Backend[T]] struct {
	cow     *Container[T]
	backend B
	extents []int
}

// TenFromSlice creates an owned tensor with the given extents from flat
// data. The element count must equal the product of the extents.
func TenFromSlice[T Scalar, B Backend[T]](backend B, extents []int, data []T) *Tensor[T, B] {
	checkExtents(extents, len(data))
	return &Tensor[T, B]{cow: FromSlice(data), backend: backend, extents: cloneExtents(extents)}
}

// TenZeros creates an owned zero tensor with the given extents.
func TenZeros[T Scalar, B Backend[T]](backend B, extents []int) *Tensor[T, B] {
	n := volume(extents)
	checkExtents(extents, n)
	return &Tensor[T, B]{cow: Zeros[T](n), backend: backend, extents: cloneExtents(extents)}
}

// TenBorrow creates a tensor borrowing flat data without copying.
// See Borrow for the provenance contract.
func TenBorrow[T Scalar, B Backend[T]](backend B, extents []int, data []T) *Tensor[T, B] {
	checkExtents(extents, len(data))
	return &Tensor[T, B]{cow: Borrow(data), backend: backend, extents: cloneExtents(extents)}
}

// TenWrap reinterprets an existing container as a tensor without copying.
func TenWrap[T Scalar, B Backend[T]](backend B, extents []int, c *Container[T]) *Tensor[T, B] {
	checkExtents(extents, c.Len())
	return &Tensor[T, B]{cow: c, backend: backend, extents: cloneExtents(extents)}
}

func volume(extents []int) int {
	n := 1
	for _, e := range extents {
		n *= e
	}
	return n
}

func cloneExtents(extents []int) []int {
	out := make([]int, len(extents))
	copy(out, extents)
	return out
}

func checkExtents(extents []int, n int) {
	if len(extents) == 0 {
		panic("tensor: rank must be at least 1")
	}
	for i, e := range extents {
		if e <= 0 {
			panic(fmt.Sprintf("tensor: invalid extent %d at axis %d", e, i))
		}
	}
	if volume(extents) != n {
		panic(fmt.Sprintf("tensor: extents %v require %d elements, got %d", extents, volume(extents), n))
	}
}

// Rank returns the number of axes.
func (t *Tensor[T, B]) Rank() int { return len(t.extents) }

// Extents returns the per-axis lengths. The returned slice is shared;
// callers must not modify it.
func (t *Tensor[T, B]) Extents() []int { return t.extents }

// Len returns the total element count.
func (t *Tensor[T, B]) Len() int { return t.cow.Len() }

// flatIndex maps a columns-first multi-index to a flat offset.
func (t *Tensor[T, B]) flatIndex(idx []int) int {
	if len(idx) != len(t.extents) {
		panic(fmt.Sprintf("tensor: got %d indices for rank-%d tensor", len(idx), len(t.extents)))
	}
	sum, product := 0, 1
	for n, i := range idx {
		if i < 0 || i >= t.extents[n] {
			panic(fmt.Sprintf("tensor: index %v out of bounds %v", idx, t.extents))
		}
		sum += i * product
		product *= t.extents[n]
	}
	return sum
}

// At returns the element at the given columns-first multi-index.
func (t *Tensor[T, B]) At(idx ...int) T {
	return t.cow.At(t.flatIndex(idx))
}

// Set writes the element at the given multi-index, triggering
// copy-on-write when the tensor is still borrowed.
func (t *Tensor[T, B]) Set(v T, idx ...int) {
	t.cow.Set(t.flatIndex(idx), v)
}

// Data returns a read-only view of the flat storage.
func (t *Tensor[T, B]) Data() []T { return t.cow.Data() }

// IsOwned reports whether the tensor owns its storage.
func (t *Tensor[T, B]) IsOwned() bool { return t.cow.IsOwned() }

// Container exposes the underlying copy-on-write container.
func (t *Tensor[T, B]) Container() *Container[T] { return t.cow }

// Backend returns the bound compute backend.
func (t *Tensor[T, B]) Backend() B { return t.backend }

// IndexSlice returns the rank-(N-1) sub-tensor at index i of the
// outermost (last, slowest-varying) axis. The sub-tensor views the
// parent's container: reads see the parent's current elements, even
// after the parent itself copies out of a borrow, and the first write
// to the slice copies it out under the standard copy-on-write contract.
func (t *Tensor[T, B]) IndexSlice(i int) *Tensor[T, B] {
	if len(t.extents) < 2 {
		panic("tensor: cannot slice a rank-1 tensor")
	}
	outer := t.extents[len(t.extents)-1]
	if i < 0 || i >= outer {
		panic(fmt.Sprintf("tensor: slice index %d out of bounds %d", i, outer))
	}
	sub := t.Len() / outer
	return &Tensor[T, B]{
		cow:     View(t.cow, i*sub, sub),
		backend: t.backend,
		extents: cloneExtents(t.extents[:len(t.extents)-1]),
	}
}

// Matrix reinterprets a rank-2 tensor as a matrix sharing the same
// storage. A tensor with extents [e0, e1] becomes an e1-by-e0 matrix:
// the flat element sequence and storage identity are preserved, only
// the indexing convention changes.
func (t *Tensor[T, B]) Matrix() *Matrix[T, B] {
	if len(t.extents) != 2 {
		panic(fmt.Sprintf("tensor: only rank-2 tensors convert to matrices, got rank %d", len(t.extents)))
	}
	return &Matrix[T, B]{cow: t.cow, backend: t.backend, rows: t.extents[1], cols: t.extents[0]}
}

// String renders the flat elements, prefixing borrowed storage with '&'.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor%v%s", t.extents, t.cow.String())
}

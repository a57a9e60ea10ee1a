// Package slas is a static linear algebra system: fixed-shape vector,
// matrix and tensor types with copy-on-write storage and interchangeable
// compute backends.
//
// # Copy-on-write
//
// Containers either own their elements or borrow them from caller-owned
// memory. A borrowed container reads through its source with zero copies
// until the first mutation, which copies the elements out exactly once:
//
//	source := []float32{1, 2, 3}
//	v := slas.Borrow(be, source)
//	v.Set(0, 0)                  // copies, then writes
//	// v is [0 2 3], source is still [1 2 3]
//
// The borrowed view carries no lifetime enforcement: the source must stay
// valid and must not be written through another alias while the container
// remains borrowed.
//
// # Backends
//
// Every operation routes through a Backend bound into the container's
// type. Pin backend/native for small-size throughput, backend/blas for
// gonum's optimized kernels, or backend/auto to let per-operation size
// thresholds decide. A pinned backend always wins over the thresholds.
//
//	be := auto.New[float32]()
//	a := slas.Own(be, 1, 2, 3.2)
//	b := slas.Own(be, 3, 0.4, 5)
//	fmt.Println(a.Dot(b)) // 19.8
//
// # Shapes
//
// Shapes are fixed at construction and validated there; operations treat
// operand mismatches as programmer errors and panic. Matrices index
// rows-first and support lazy transpose: Matrix.T flips an orientation
// flag consulted by indexing and multiplication, never moving data.
// Tensors index columns-first; a rank-2 tensor reinterprets to a matrix
// and back with the same backing storage.
package slas

package core

import "fmt"

// Matrix is a fixed-shape copy-on-write matrix bound to a compute
// backend. Storage is row-major; indexing is rows-first: At(r, c)
// addresses row r, column c.
//
// The transpose flag never moves data. It marks the matrix as logically
// transposed relative to its physical storage and is consulted only by
// indexing and the multiply operations, which forward it to the backend
// as an argument-order/leading-dimension choice.
type Matrix[T Scalar, B Backend[T]] struct {
	cow     *Container[T]
	backend B
	rows    int // physical rows
	cols    int // physical cols
	trans   bool
}

// MatFromSlice creates an owned rows-by-cols matrix from row-major data.
// The element count must equal rows*cols; shape is fixed from here on.
func MatFromSlice[T Scalar, B Backend[T]](backend B, rows, cols int, data []T) *Matrix[T, B] {
	checkShape(rows, cols, len(data))
	return &Matrix[T, B]{cow: FromSlice(data), backend: backend, rows: rows, cols: cols}
}

// MatZeros creates an owned zero matrix of the given shape.
func MatZeros[T Scalar, B Backend[T]](backend B, rows, cols int) *Matrix[T, B] {
	checkShape(rows, cols, rows*cols)
	return &Matrix[T, B]{cow: Zeros[T](rows * cols), backend: backend, rows: rows, cols: cols}
}

// MatBorrow creates a matrix borrowing row-major data without copying.
// See Borrow for the provenance contract.
func MatBorrow[T Scalar, B Backend[T]](backend B, rows, cols int, data []T) *Matrix[T, B] {
	checkShape(rows, cols, len(data))
	return &Matrix[T, B]{cow: Borrow(data), backend: backend, rows: rows, cols: cols}
}

// MatWrap reinterprets an existing container as a rows-by-cols matrix
// without copying. The container keeps its identity, so copy-on-write
// state is shared with every other wrapper of the same container.
func MatWrap[T Scalar, B Backend[T]](backend B, rows, cols int, c *Container[T]) *Matrix[T, B] {
	checkShape(rows, cols, c.Len())
	return &Matrix[T, B]{cow: c, backend: backend, rows: rows, cols: cols}
}

func checkShape(rows, cols, n int) {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid shape %dx%d", rows, cols))
	}
	if rows*cols != n {
		panic(fmt.Sprintf("matrix: shape %dx%d requires %d elements, got %d", rows, cols, rows*cols, n))
	}
}

// Rows returns the logical row count, respecting the transpose flag.
func (m *Matrix[T, B]) Rows() int {
	if m.trans {
		return m.cols
	}
	return m.rows
}

// Cols returns the logical column count, respecting the transpose flag.
func (m *Matrix[T, B]) Cols() int {
	if m.trans {
		return m.rows
	}
	return m.cols
}

// IsTrans reports whether the matrix is lazily transposed.
func (m *Matrix[T, B]) IsTrans() bool { return m.trans }

// T returns the lazily transposed matrix. No data moves: the result
// shares the receiver's storage and only flips the orientation flag.
func (m *Matrix[T, B]) T() *Matrix[T, B] {
	return &Matrix[T, B]{cow: m.cow, backend: m.backend, rows: m.rows, cols: m.cols, trans: !m.trans}
}

// At returns the element at logical row r, column c.
func (m *Matrix[T, B]) At(r, c int) T {
	return m.cow.At(m.index(r, c))
}

// Set writes the element at logical row r, column c, triggering
// copy-on-write when the matrix is still borrowed.
func (m *Matrix[T, B]) Set(r, c int, v T) {
	m.cow.Set(m.index(r, c), v)
}

func (m *Matrix[T, B]) index(r, c int) int {
	if m.trans {
		r, c = c, r
	}
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of bounds %dx%d", r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

// Data returns a read-only view of the physical row-major storage.
func (m *Matrix[T, B]) Data() []T { return m.cow.Data() }

// IsOwned reports whether the matrix owns its storage.
func (m *Matrix[T, B]) IsOwned() bool { return m.cow.IsOwned() }

// Container exposes the underlying copy-on-write container.
func (m *Matrix[T, B]) Container() *Container[T] { return m.cow }

// Backend returns the bound compute backend.
func (m *Matrix[T, B]) Backend() B { return m.backend }

// MulVec returns the matrix-vector product m*x as a new owned vector.
// The transpose flag selects the transposed kernel; storage is never
// rearranged.
func (m *Matrix[T, B]) MulVec(x *Vector[T, B]) *Vector[T, B] {
	if x.Len() != m.Cols() {
		panic(fmt.Sprintf("matrix: cannot multiply %dx%d by vector of length %d", m.Rows(), m.Cols(), x.Len()))
	}
	out := VecZeros[T, B](m.backend, m.Rows())
	m.backend.MatVec(out.MutData(), m.cow.Data(), x.Data(), m.rows, m.cols, m.trans)
	return out
}

// MulMat returns the matrix product m*other as a new owned matrix.
// Orientation flags of both operands are forwarded to the backend, so a
// lazily transposed operand multiplies with zero copies.
func (m *Matrix[T, B]) MulMat(other *Matrix[T, B]) *Matrix[T, B] {
	mm, k, n := m.Rows(), m.Cols(), other.Cols()
	if other.Rows() != k {
		panic(fmt.Sprintf("matrix: cannot multiply %dx%d by %dx%d", mm, k, other.Rows(), n))
	}
	out := MatZeros[T, B](m.backend, mm, n)
	m.backend.MatMul(out.cow.MutData(), m.cow.Data(), other.cow.Data(), mm, n, k, m.trans, other.trans)
	return out
}

// Tensor reinterprets the matrix as a rank-2 tensor sharing the same
// storage. Tensors index columns-first, so a rows-by-cols matrix becomes
// a tensor with extents [cols, rows]; the flat element sequence and
// storage identity are preserved.
//
// Panics on a lazily transposed matrix: the orientation tag has no
// tensor counterpart, so materialize or drop it first.
func (m *Matrix[T, B]) Tensor() *Tensor[T, B] {
	if m.trans {
		panic("matrix: cannot reinterpret a lazily transposed matrix as a tensor")
	}
	return &Tensor[T, B]{cow: m.cow, backend: m.backend, extents: []int{m.cols, m.rows}}
}

// String renders the logical rows, prefixing borrowed storage with '&'.
func (m *Matrix[T, B]) String() string {
	s := ""
	if !m.cow.IsOwned() {
		s = "&"
	}
	s += "["
	for r := 0; r < m.Rows(); r++ {
		if r > 0 {
			s += " "
		}
		s += "["
		for c := 0; c < m.Cols(); c++ {
			if c > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%v", m.At(r, c))
		}
		s += "]"
	}
	return s + "]"
}

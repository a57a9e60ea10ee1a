package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mat23(be Backend[float32]) *Matrix[float32, Backend[float32]] {
	// [[1 2 3]
	//  [4 5 6]]
	return MatFromSlice[float32, Backend[float32]](be, 2, 3, []float32{1, 2, 3, 4, 5, 6})
}

func TestMatrixIndexingRowsFirst(t *testing.T) {
	m := mat23(NewMockBackend[float32]())

	assert.Equal(t, float32(1), m.At(0, 0))
	assert.Equal(t, float32(3), m.At(0, 2))
	assert.Equal(t, float32(4), m.At(1, 0))
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, 3) })
}

func TestMatrixShapeValidation(t *testing.T) {
	be := NewMockBackend[float32]()
	assert.Panics(t, func() { MatFromSlice[float32, Backend[float32]](be, 2, 3, []float32{1, 2}) })
	assert.Panics(t, func() { MatFromSlice[float32, Backend[float32]](be, 0, 3, nil) })
}

func TestMatrixLazyTranspose(t *testing.T) {
	m := mat23(NewMockBackend[float32]())
	mt := m.T()

	// No data moved: same backing storage, flipped logical shape.
	assert.Same(t, &m.Data()[0], &mt.Data()[0])
	assert.Equal(t, 3, mt.Rows())
	assert.Equal(t, 2, mt.Cols())
	assert.True(t, mt.IsTrans())

	assert.Equal(t, float32(2), mt.At(1, 0))
	assert.Equal(t, float32(4), mt.At(0, 1))

	// Double transpose restores the original view.
	back := mt.T()
	assert.False(t, back.IsTrans())
	assert.Equal(t, m.At(1, 2), back.At(1, 2))
}

func TestMatrixMulMat(t *testing.T) {
	be := NewMockBackend[float32]()
	a := mat23(be)
	b := MatFromSlice[float32, Backend[float32]](be, 3, 2, []float32{1, 2, 3, 4, 5, 6})

	c := a.MulMat(b)

	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	assert.Equal(t, []float32{22, 28, 49, 64}, c.Data())
}

func TestMatrixMulMatTransposed(t *testing.T) {
	be := NewMockBackend[float32]()
	a := mat23(be)

	// Aᵀ is 3x2, so Aᵀ*A is 3x3, computed without materializing Aᵀ.
	c := a.T().MulMat(a)

	require.Equal(t, 3, c.Rows())
	require.Equal(t, 3, c.Cols())
	assert.Equal(t, []float32{
		17, 22, 27,
		22, 29, 36,
		27, 36, 45,
	}, c.Data())
}

func TestMatrixMulMatMismatchPanics(t *testing.T) {
	be := NewMockBackend[float32]()
	a := mat23(be)
	assert.Panics(t, func() { a.MulMat(a) }, "2x3 times 2x3 must be rejected")
}

func TestMatrixMulVec(t *testing.T) {
	be := NewMockBackend[float32]()
	a := mat23(be)
	x := VecOwn[float32, Backend[float32]](be, 1, 0, 1)

	y := a.MulVec(x)
	assert.Equal(t, []float32{4, 10}, y.Data())

	// Transposed multiply reinterprets the same storage.
	yt := a.T().MulVec(VecOwn[float32, Backend[float32]](be, 1, 1))
	assert.Equal(t, []float32{5, 7, 9}, yt.Data())
}

func TestMatrixSetTriggersCow(t *testing.T) {
	be := NewMockBackend[float32]()
	src := []float32{1, 2, 3, 4}
	m := MatBorrow[float32, Backend[float32]](be, 2, 2, src)

	m.Set(0, 1, 9)

	assert.True(t, m.IsOwned())
	assert.Equal(t, float32(9), m.At(0, 1))
	assert.Equal(t, []float32{1, 2, 3, 4}, src)
}

func TestMatrixTensorRoundTrip(t *testing.T) {
	m := mat23(NewMockBackend[float32]())
	addr := &m.Data()[0]

	ten := m.Tensor()
	require.Equal(t, []int{3, 2}, ten.Extents())
	assert.Same(t, addr, &ten.Data()[0], "conversion must preserve storage identity")

	// Columns-first tensor indexing sees the same elements.
	assert.Equal(t, m.At(1, 2), ten.At(2, 1))

	back := ten.Matrix()
	assert.Same(t, addr, &back.Data()[0])
	assert.Equal(t, 2, back.Rows())
	assert.Equal(t, 3, back.Cols())
	assert.Equal(t, m.Data(), back.Data(), "flat element sequence must be preserved")
}

func TestMatrixTensorRejectsLazyTranspose(t *testing.T) {
	m := mat23(NewMockBackend[float32]())
	assert.Panics(t, func() { m.T().Tensor() })
}

func TestMatrixString(t *testing.T) {
	be := NewMockBackend[float32]()
	m := MatFromSlice[float32, Backend[float32]](be, 2, 2, []float32{1, 2, 3, 4})
	assert.Equal(t, "[[1, 2] [3, 4]]", m.String())

	b := MatBorrow[float32, Backend[float32]](be, 1, 2, []float32{1, 2})
	assert.Equal(t, "&[[1, 2]]", b.String())
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorColumnsFirstIndexing(t *testing.T) {
	be := NewMockBackend[float32]()
	// Extents [2, 3]: flat offset of (i0, i1) is i0 + 2*i1.
	ten := TenFromSlice[float32, Backend[float32]](be, []int{2, 3}, []float32{0, 1, 2, 3, 4, 5})

	assert.Equal(t, float32(0), ten.At(0, 0))
	assert.Equal(t, float32(1), ten.At(1, 0))
	assert.Equal(t, float32(2), ten.At(0, 1))
	assert.Equal(t, float32(5), ten.At(1, 2))

	assert.Panics(t, func() { ten.At(2, 0) })
	assert.Panics(t, func() { ten.At(0) }, "rank must match the index count")
}

func TestTensorExtentsValidation(t *testing.T) {
	be := NewMockBackend[float32]()
	assert.Panics(t, func() { TenFromSlice[float32, Backend[float32]](be, []int{2, 3}, []float32{1}) })
	assert.Panics(t, func() { TenFromSlice[float32, Backend[float32]](be, []int{0}, nil) })
	assert.Panics(t, func() { TenFromSlice[float32, Backend[float32]](be, nil, nil) })
}

func TestTensorSetTriggersCow(t *testing.T) {
	be := NewMockBackend[float64]()
	src := []float64{1, 2, 3, 4}
	ten := TenBorrow[float64, Backend[float64]](be, []int{2, 2}, src)

	ten.Set(9, 1, 0)

	assert.True(t, ten.IsOwned())
	assert.Equal(t, float64(9), ten.At(1, 0))
	assert.Equal(t, []float64{1, 2, 3, 4}, src)
}

func TestTensorIndexSliceAliases(t *testing.T) {
	be := NewMockBackend[float32]()
	// Extents [2, 2, 3]: the outermost axis is the last one.
	ten := TenFromSlice[float32, Backend[float32]](be, []int{2, 2, 3},
		[]float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})

	s := ten.IndexSlice(1)
	require.Equal(t, []int{2, 2}, s.Extents())
	require.False(t, s.IsOwned(), "a slice borrows the parent's storage")
	assert.Same(t, &ten.Data()[4], &s.Data()[0])

	// Parent writes inside the window are visible until the slice is
	// materialized.
	ten.Set(42, 0, 0, 1)
	assert.Equal(t, float32(42), s.At(0, 0))

	// Writing the slice copies it out; the parent stays untouched.
	s.Set(-1, 1, 1)
	assert.True(t, s.IsOwned())
	assert.Equal(t, float32(7), ten.At(1, 1, 1))
	assert.Equal(t, float32(-1), s.At(1, 1))
}

func TestTensorIndexSliceBounds(t *testing.T) {
	be := NewMockBackend[float32]()
	ten := TenFromSlice[float32, Backend[float32]](be, []int{2, 2}, []float32{1, 2, 3, 4})

	assert.Panics(t, func() { ten.IndexSlice(2) })
	rank1 := ten.IndexSlice(0)
	assert.Panics(t, func() { rank1.IndexSlice(0) }, "rank-1 tensors cannot be sliced")
}

func TestTensorMatrixRequiresRank2(t *testing.T) {
	be := NewMockBackend[float32]()
	ten := TenFromSlice[float32, Backend[float32]](be, []int{2, 2, 2},
		[]float32{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Panics(t, func() { ten.Matrix() })
}

func TestTensorExtentsAreCopied(t *testing.T) {
	be := NewMockBackend[float32]()
	extents := []int{2, 2}
	ten := TenFromSlice[float32, Backend[float32]](be, extents, []float32{1, 2, 3, 4})

	extents[0] = 99
	assert.Equal(t, []int{2, 2}, ten.Extents(), "constructor must snapshot its extents")
}

func TestTensorIndexSliceTracksBorrowedParent(t *testing.T) {
	be := NewMockBackend[float32]()
	src := []float32{1, 2, 3, 4}
	ten := TenBorrow[float32, Backend[float32]](be, []int{2, 2}, src)

	s := ten.IndexSlice(1)
	require.False(t, s.IsOwned())

	// Flat index of (0, 1) is 2, inside the slice's window. The write
	// copies the parent out of its borrow; the slice must follow the
	// parent's new storage, not the stale source window.
	ten.Set(99, 0, 1)
	require.True(t, ten.IsOwned())
	assert.Equal(t, float32(99), s.At(0))
	assert.Equal(t, float32(3), src[2], "borrow source stays untouched")

	// The slice's own first write still isolates it.
	s.Set(5, 0)
	assert.Equal(t, float32(99), ten.At(0, 1))
	assert.Equal(t, float32(5), s.At(0))
}

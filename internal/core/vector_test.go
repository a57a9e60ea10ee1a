package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorDot(t *testing.T) {
	be := NewMockBackend[float32]()
	a := VecOwn(be, 1, 2, 3.2)
	b := VecOwn(be, 3, 0.4, 5)

	assert.InDelta(t, 19.8, a.Dot(b), 1e-5)
}

func TestVectorDotMismatchPanics(t *testing.T) {
	be := NewMockBackend[float32]()
	a := VecOwn(be, 1, 2)
	b := VecOwn(be, 1, 2, 3)

	assert.Panics(t, func() { a.Dot(b) })
}

func TestVectorAdd(t *testing.T) {
	be := NewMockBackend[float64]()
	a := VecOwn(be, 1, 2, 3)
	b := VecOwn(be, 10, 20, 30)

	sum := a.Add(b)
	assert.Equal(t, []float64{11, 22, 33}, sum.Data())
	assert.Equal(t, []float64{1, 2, 3}, a.Data(), "add must not mutate its operands")
}

func TestVectorAxpyTriggersCow(t *testing.T) {
	be := NewMockBackend[float32]()
	src := []float32{1, 2, 3}
	v := VecBorrow(be, src)
	x := VecOwn(be, 1, 1, 1)

	v.Axpy(2, x)

	assert.Equal(t, []float32{3, 4, 5}, v.Data())
	assert.Equal(t, []float32{1, 2, 3}, src)
	assert.True(t, v.IsOwned())
}

func TestVectorScaleAndNorm(t *testing.T) {
	be := NewMockBackend[float64]()
	v := VecOwn(be, 3, 4)

	assert.InDelta(t, 5, v.Norm(), 1e-12)
	v.Scale(2)
	assert.Equal(t, []float64{6, 8}, v.Data())
}

func TestVectorNormalizeTriggersCow(t *testing.T) {
	be := NewMockBackend[float32]()
	src := []float32{3, 4}
	v := VecBorrow(be, src)

	v.Normalize()

	require.True(t, v.IsOwned())
	assert.InDelta(t, 0.6, v.At(0), 1e-6)
	assert.InDelta(t, 0.8, v.At(1), 1e-6)
	assert.Equal(t, []float32{3, 4}, src, "normalize must copy before writing a borrow")
	assert.InDelta(t, 1, v.Norm(), 1e-6)
}

func TestVectorSetIsolatesBorrow(t *testing.T) {
	be := NewMockBackend[float32]()
	src := []float32{1, 2, 3}
	v := VecBorrow(be, src)

	v.Set(0, 0)

	assert.Equal(t, []float32{0, 2, 3}, v.Data())
	assert.Equal(t, []float32{1, 2, 3}, src)
}

func TestVectorString(t *testing.T) {
	be := NewMockBackend[float32]()
	assert.Equal(t, "&[1, 2]", VecBorrow(be, []float32{1, 2}).String())
	assert.Equal(t, "[1, 2]", VecOwn(be, 1, 2).String())
}

func TestVectorWrapSharesContainer(t *testing.T) {
	be := NewMockBackend[float64]()
	c := Borrow([]float64{1, 2})
	v := VecWrap(be, c)

	require.Same(t, c, v.Container())
	v.Set(0, 9)
	assert.True(t, c.IsOwned(), "wrapper mutation must drive the shared container's COW state")
}

package core

// Counting wraps a Backend and counts how many times each operation class
// was delegated to it. Used to verify dispatch decisions in tests and by
// the bench command to show which backend a size routes to.
//
// Counts are plain ints: Counting is for single-goroutine measurement,
// matching the library's synchronous execution model.
type Counting[T Scalar] struct {
	Inner Backend[T]

	DotCalls    int
	AxpyCalls   int
	ScaleCalls  int
	AddCalls    int
	NormCalls   int
	NormlzCalls int
	MatVecCalls int
	MatMulCalls int
}

var _ Backend[float64] = (*Counting[float64])(nil)

// NewCounting wraps inner with call counting.
func NewCounting[T Scalar](inner Backend[T]) *Counting[T] {
	return &Counting[T]{Inner: inner}
}

// Total returns the sum of all recorded delegations.
func (c *Counting[T]) Total() int {
	return c.DotCalls + c.AxpyCalls + c.ScaleCalls + c.AddCalls +
		c.NormCalls + c.NormlzCalls + c.MatVecCalls + c.MatMulCalls
}

// Reset clears all counters.
func (c *Counting[T]) Reset() {
	*c = Counting[T]{Inner: c.Inner}
}

func (c *Counting[T]) Dot(a, b []T) T {
	c.DotCalls++
	return c.Inner.Dot(a, b)
}

func (c *Counting[T]) Axpy(alpha T, x, y []T) {
	c.AxpyCalls++
	c.Inner.Axpy(alpha, x, y)
}

func (c *Counting[T]) Scale(alpha T, x []T) {
	c.ScaleCalls++
	c.Inner.Scale(alpha, x)
}

func (c *Counting[T]) Add(dst, a, b []T) {
	c.AddCalls++
	c.Inner.Add(dst, a, b)
}

func (c *Counting[T]) Norm(x []T) T {
	c.NormCalls++
	return c.Inner.Norm(x)
}

func (c *Counting[T]) Normalize(x []T) {
	c.NormlzCalls++
	c.Inner.Normalize(x)
}

func (c *Counting[T]) MatVec(dst, a, x []T, m, n int, trans bool) {
	c.MatVecCalls++
	c.Inner.MatVec(dst, a, x, m, n, trans)
}

func (c *Counting[T]) MatMul(dst, a, b []T, m, n, k int, transA, transB bool) {
	c.MatMulCalls++
	c.Inner.MatMul(dst, a, b, m, n, k, transA, transB)
}

func (c *Counting[T]) Name() string {
	return "counting(" + c.Inner.Name() + ")"
}

package native

import (
	"fmt"

	"github.com/unic0rn9k/slas/internal/core"
	"github.com/unic0rn9k/slas/internal/parallel"
)

// blockSize is the tile edge for the no-transpose matmul path. 64
// elements keeps three float64 tiles inside a typical L1 cache.
const blockSize = 64

// MatMul computes dst = op(A)*op(B) with op(A) m-by-k and op(B) k-by-n,
// all row-major. The operands arrive in their physical layout; the
// transpose flags only change how they are indexed, so a lazily
// transposed matrix multiplies without materializing.
func (*Backend[T]) MatMul(dst, a, b []T, m, n, k int, transA, transB bool) {
	if len(dst) != m*n {
		panic(fmt.Sprintf("native: matmul dst length %d does not match %dx%d", len(dst), m, n))
	}
	if len(a) != m*k || len(b) != k*n {
		panic(fmt.Sprintf("native: matmul operand lengths %d/%d for (%d,%d,%d)", len(a), len(b), m, n, k))
	}

	if !transA && !transB {
		matmulBlocked(dst, a, b, m, n, k)
		return
	}

	// Transposed paths index through the physical layout directly.
	// a physical: k-by-m when transA, b physical: n-by-k when transB.
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for l := 0; l < k; l++ {
				var av, bv T
				if transA {
					av = a[l*m+i]
				} else {
					av = a[i*k+l]
				}
				if transB {
					bv = b[j*k+l]
				} else {
					bv = b[l*n+j]
				}
				sum += av * bv
			}
			dst[i*n+j] = sum
		}
	}
}

// matmulBlocked is the cache-tiled i-k-j kernel for the common
// untransposed case. The inner loop streams over contiguous rows of b
// and dst, which is what makes i-k-j beat the naive i-j-k order. Row
// blocks are independent (each owns a disjoint band of dst), so they
// fan out across workers when there are enough of them.
func matmulBlocked[T core.Scalar](dst, a, b []T, m, n, k int) {
	for i := range dst {
		dst[i] = 0
	}
	rowBlocks := (m + blockSize - 1) / blockSize
	parallel.For(rowBlocks, parallel.DefaultConfig(), func(bi int) {
		ii := bi * blockSize
		iMax := min(ii+blockSize, m)
		for ll := 0; ll < k; ll += blockSize {
			lMax := min(ll+blockSize, k)
			for jj := 0; jj < n; jj += blockSize {
				jMax := min(jj+blockSize, n)
				for i := ii; i < iMax; i++ {
					for l := ll; l < lMax; l++ {
						av := a[i*k+l]
						brow := b[l*n+jj : l*n+jMax]
						drow := dst[i*n+jj : i*n+jMax]
						for j := range brow {
							drow[j] += av * brow[j]
						}
					}
				}
			}
		}
	})
}

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/unic0rn9k/slas/backend/blas"
	"github.com/unic0rn9k/slas/backend/native"
	"github.com/unic0rn9k/slas/internal/config"
)

func newBenchCmd() *cobra.Command {
	var iters int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time native vs blas kernels across sizes",
		Long: "Times the dot and matmul kernels of both backends across a size\n" +
			"sweep and marks where the configured dispatch thresholds sit, so a\n" +
			"threshold can be sanity-checked against the actual crossover on\n" +
			"this machine.",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := config.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			nat := native.New[float32]()
			bla := blas.New[float32]()

			fmt.Fprintf(out, "dot (threshold %d):\n", th.Dot)
			fmt.Fprintf(out, "%10s %14s %14s %8s\n", "len", "native", "blas", "route")
			for _, n := range []int{16, 64, 256, 750, 1024, 4096, 20000} {
				a, b := randVec(n), randVec(n)
				tn := timeOp(iters, func() { nat.Dot(a, b) })
				tb := timeOp(iters, func() { bla.Dot(a, b) })
				fmt.Fprintf(out, "%10d %14s %14s %8s\n", n, tn, tb, route(n, th.Dot))
			}

			fmt.Fprintf(out, "\nmatmul (threshold %d on m*n*k):\n", th.MatMul)
			fmt.Fprintf(out, "%10s %14s %14s %8s\n", "size", "native", "blas", "route")
			for _, n := range []int{8, 16, 32, 64, 128} {
				a, b := randVec(n*n), randVec(n*n)
				dst := make([]float32, n*n)
				tn := timeOp(iters, func() { nat.MatMul(dst, a, b, n, n, n, false, false) })
				tb := timeOp(iters, func() { bla.MatMul(dst, a, b, n, n, n, false, false) })
				fmt.Fprintf(out, "%9dx%d %13s %14s %8s\n", n, n, tn, tb, route(n*n*n, th.MatMul))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&iters, "iters", 100, "iterations per measurement")
	return cmd
}

func randVec(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rand.Float32()
	}
	return v
}

func timeOp(iters int, op func()) time.Duration {
	start := time.Now()
	for i := 0; i < iters; i++ {
		op()
	}
	return time.Since(start) / time.Duration(iters)
}

// route reports which backend the auto policy picks for n elements.
func route(n, threshold int) string {
	if n >= threshold {
		return "blas"
	}
	return "native"
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unic0rn9k/slas/backend/auto"
	"github.com/unic0rn9k/slas/backend/blas"
	"github.com/unic0rn9k/slas/backend/native"
	"github.com/unic0rn9k/slas/internal/config"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print available backends and resolved dispatch thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := config.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "backends:")
			fmt.Fprintf(out, "  %-8s pure Go, small-size kernels\n", native.New[float32]().Name())
			fmt.Fprintf(out, "  %-8s gonum BLAS kernels\n", blas.New[float32]().Name())
			fmt.Fprintf(out, "  %-8s threshold dispatch over the two\n", auto.NewThresholds[float32](th).Name())

			fmt.Fprintln(out, "\ndispatch thresholds (elements, vendor at or above):")
			fmt.Fprintf(out, "  dot     %d\n", th.Dot)
			fmt.Fprintf(out, "  norm    %d\n", th.Norm)
			fmt.Fprintf(out, "  matvec  %d\n", th.MatVec)
			fmt.Fprintf(out, "  matmul  %d\n", th.MatMul)
			return nil
		},
	}
}

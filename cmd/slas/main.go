// Command slas inspects and benchmarks the library's compute backends.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "slas",
		Short:        "Inspect and benchmark slas compute backends",
		SilenceUsage: true,
	}

	root.AddCommand(newInfoCmd())
	root.AddCommand(newBenchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylokit/phylokit/newick"
	"github.com/phylokit/phylokit/tree"
)

func init() {
	rootCmd.AddCommand(newMatrixCmd())
}

func newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <tree>",
		Short: "Print all pairwise leaf distances",
		Long: `The matrix command prints one "leaf leaf distance" line per unordered
pair of distinct leaves, C(L,2) lines for L leaves.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if big {
				return runMatrix[uint64, float64](args[0])
			}
			return runMatrix[uint32, float32](args[0])
		},
	}
}

func runMatrix[N tree.ID, L tree.Length](path string) error {
	t, err := newick.Open[N, L](path, loadOptions())
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, pair := range t.DistanceMatrix() {
		fmt.Fprintf(w, "%s\t%s\t%g\n", nodeName(t, pair.U), nodeName(t, pair.V), pair.Dist)
	}
	return nil
}

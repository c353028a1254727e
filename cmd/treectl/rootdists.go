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
	rootCmd.AddCommand(newRootDistsCmd())
}

func newRootDistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rootdists <tree>",
		Short: "Print the weighted root-to-node distance of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if big {
				return runRootDists[uint64, float64](args[0])
			}
			return runRootDists[uint32, float32](args[0])
		},
	}
}

func runRootDists[N tree.ID, L tree.Length](path string) error {
	t, err := newick.Open[N, L](path, loadOptions())
	if err != nil {
		return err
	}
	dists := t.RootDists()
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for node, d := range dists {
		fmt.Fprintf(w, "%s\t%g\n", nodeName(t, N(node)), d)
	}
	return nil
}

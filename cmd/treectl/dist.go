package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phylokit/phylokit/newick"
	"github.com/phylokit/phylokit/tree"
)

func init() {
	rootCmd.AddCommand(newDistCmd())
}

func newDistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dist <tree> <label> <label>",
		Short: "Print the weighted distance between two labeled nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if big {
				return runDist[uint64, float64](args[0], args[1], args[2])
			}
			return runDist[uint32, float32](args[0], args[1], args[2])
		},
	}
}

func runDist[N tree.ID, L tree.Length](path, a, b string) error {
	t, err := newick.Open[N, L](path, loadOptions())
	if err != nil {
		return err
	}
	nodes, err := resolveLabels(t, []string{a, b})
	if err != nil {
		return err
	}
	fmt.Printf("%g\n", t.Dist(nodes[0], nodes[1]))
	return nil
}

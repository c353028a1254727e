package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylokit/phylokit/newick"
	"github.com/phylokit/phylokit/tree"
)

func init() {
	rootCmd.AddCommand(newTopologyCmd())
}

func newTopologyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topology <tree>",
		Short: "Print the tree topology, ignoring edge lengths",
		Long: `The topology command loads a tree without edge-length storage and
prints its Newick serialization, leaving only structure and labels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if big {
				return runTopology[uint64, float64](args[0])
			}
			return runTopology[uint32, float32](args[0])
		},
	}
}

func runTopology[N tree.ID, L tree.Length](path string) error {
	opts := loadOptions()
	opts.StoreLengths = false
	t, err := newick.Open[N, L](path, opts)
	if err != nil {
		return err
	}
	if err := t.WriteNewick(os.Stdout, t.Root(), true); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

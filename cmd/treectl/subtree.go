package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylokit/phylokit/newick"
	"github.com/phylokit/phylokit/tree"
)

func init() {
	rootCmd.AddCommand(newSubtreeCmd())
}

func newSubtreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subtree <tree> <label>...",
		Short: "Extract and print a subtree",
		Long: `The subtree command extracts the subtree rooted at the named node and
prints its Newick serialization. With several labels, the subtree rooted at
their most recent common ancestor is extracted.

Example:
  treectl subtree tree.nwk clade_a
  treectl subtree tree.nwk human chimp`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if big {
				return runSubtree[uint64, float64](args[0], args[1:])
			}
			return runSubtree[uint32, float32](args[0], args[1:])
		},
	}
}

func runSubtree[N tree.ID, L tree.Length](path string, labels []string) error {
	t, err := newick.Open[N, L](path, loadOptions())
	if err != nil {
		return err
	}
	nodes, err := resolveLabels(t, labels)
	if err != nil {
		return err
	}
	root := nodes[0]
	if len(nodes) > 1 {
		root = t.MRCA(nodes)
	}
	sub := t.ExtractSubtree(root)
	if err := sub.WriteNewick(os.Stdout, sub.Root(), true); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phylokit/phylokit/newick"
	"github.com/phylokit/phylokit/tree"
)

func init() {
	rootCmd.AddCommand(newMRCACmd())
}

func newMRCACmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mrca <tree> <label>...",
		Short: "Find the most recent common ancestor of labeled nodes",
		Long: `The mrca command resolves each label to a node and prints the most
recent common ancestor of the set.

Example:
  treectl mrca tree.nwk human chimp gorilla`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if big {
				return runMRCA[uint64, float64](args[0], args[1:])
			}
			return runMRCA[uint32, float32](args[0], args[1:])
		},
	}
}

func runMRCA[N tree.ID, L tree.Length](path string, labels []string) error {
	t, err := newick.Open[N, L](path, loadOptions())
	if err != nil {
		return err
	}
	nodes, err := resolveLabels(t, labels)
	if err != nil {
		return err
	}
	fmt.Println(nodeName(t, t.MRCA(nodes)))
	return nil
}

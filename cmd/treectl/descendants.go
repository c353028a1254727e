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
	rootCmd.AddCommand(newDescendantsCmd())
}

func newDescendantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "descendants <tree>",
		Short: "Print the descendant count of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if big {
				return runDescendants[uint64, float64](args[0])
			}
			return runDescendants[uint32, float32](args[0])
		},
	}
}

func runDescendants[N tree.ID, L tree.Length](path string) error {
	t, err := newick.Open[N, L](path, loadOptions())
	if err != nil {
		return err
	}
	counts := t.NumDescendants()
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for node, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", nodeName(t, N(node)), c)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylokit/phylokit/newick"
	"github.com/phylokit/phylokit/tree"
)

func init() {
	rootCmd.AddCommand(newNewickCmd())
}

func newNewickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "newick <tree>",
		Short: "Parse a tree and print its Newick serialization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if big {
				return runNewick[uint64, float64](args[0])
			}
			return runNewick[uint32, float32](args[0])
		},
	}
}

func runNewick[N tree.ID, L tree.Length](path string) error {
	t, err := newick.Open[N, L](path, loadOptions())
	if err != nil {
		return err
	}
	if err := t.WriteNewick(os.Stdout, t.Root(), true); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

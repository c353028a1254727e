package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phylokit/phylokit/newick"
	"github.com/phylokit/phylokit/tree"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	var leavesOnly, internalOnly bool

	cmd := &cobra.Command{
		Use:   "stats <tree>",
		Short: "Show node counts and branch-length statistics",
		Long: `The stats command prints node, leaf and internal counts plus the
total and average branch length of a tree. The branch-length figures can be
restricted to leaf or internal edges.

Example:
  treectl stats tree.nwk
  treectl stats --leaves-only tree.nwk
  treectl stats --big huge_tree.nwk`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if leavesOnly && internalOnly {
				return fmt.Errorf("--leaves-only and --internal-only are mutually exclusive")
			}
			internal, leaves := !leavesOnly, !internalOnly
			if big {
				return runStats[uint64, float64](args[0], internal, leaves)
			}
			return runStats[uint32, float32](args[0], internal, leaves)
		},
	}
	cmd.Flags().BoolVar(&leavesOnly, "leaves-only", false, "Restrict branch-length statistics to leaf edges")
	cmd.Flags().BoolVar(&internalOnly, "internal-only", false, "Restrict branch-length statistics to internal edges")
	return cmd
}

func runStats[N tree.ID, L tree.Length](path string, internal, leaves bool) error {
	printVerbose("Loading tree: %s\n", path)
	t, err := newick.Open[N, L](path, loadOptions())
	if err != nil {
		return err
	}

	fmt.Printf("num_nodes: %d\n", t.NumNodes())
	fmt.Printf("num_leaves: %d\n", t.NumLeaves())
	fmt.Printf("num_internal: %d\n", t.NumInternal())
	fmt.Printf("total_branch_length: %g\n", t.TotalBranchLength(internal, leaves))
	fmt.Printf("avg_branch_length: %g\n", t.AvgBranchLength(internal, leaves))
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylokit/phylokit/newick"
	"github.com/phylokit/phylokit/tree"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	big     bool
	reserve int
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Inspect phylogenetic trees in Newick format",
	Long: `treectl loads Newick-formatted phylogenetic trees into a compact
index-based store and answers structural and distance queries: statistics,
most-recent-common-ancestor lookups, pairwise and all-pairs leaf distances,
and subtree extraction.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		BoolVar(&big, "big", false, "Use 64-bit node ids and double-precision lengths")
	rootCmd.PersistentFlags().
		IntVar(&reserve, "reserve", 0, "Pre-size the store for this many nodes")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadOptions returns the parse options implied by the global flags.
func loadOptions() newick.Options {
	opts := newick.DefaultOptions()
	opts.Reserve = reserve
	return opts
}

// printVerbose prints a message only in verbose mode.
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// nodeName renders a node for output: its label when stored and non-empty,
// otherwise its numeric id.
func nodeName[N tree.ID, L tree.Length](t *tree.Tree[N, L], node N) string {
	if l := t.Label(node); l != "" {
		return l
	}
	return fmt.Sprintf("#%d", node)
}

// resolveLabels maps each label to its node id, erroring on the first label
// with no matching node.
func resolveLabels[N tree.ID, L tree.Length](t *tree.Tree[N, L], labels []string) ([]N, error) {
	ix := tree.BuildLabelIndex(t)
	null := tree.NullID[N]()
	ids := make([]N, len(labels))
	for i, label := range labels {
		id := ix.Lookup(label)
		if id == null {
			return nil, fmt.Errorf("no node labeled %q", label)
		}
		ids[i] = id
	}
	return ids, nil
}

// treectl inspects phylogenetic trees stored in the Newick format.
package main

func main() {
	execute()
}

package tree

// LeafPair is one entry of the all-pairs leaf distance matrix: the weighted
// path distance between two distinct leaves.
type LeafPair[N ID] struct {
	U, V N
	Dist float64
}

// DistanceMatrix returns the weighted distance between every unordered pair
// of distinct leaves, exactly C(L,2) entries for L leaves. Pair order is
// unspecified.
//
// One postorder pass carries, for each in-flight node, a map from each
// descendant leaf to its distance up to that node. At an internal node,
// every cross-product of two distinct children's maps emits one pair; the
// children's maps are then folded into the node's own map (shifted by each
// child's edge length) and released, so peak memory is bounded by the maps
// on the current root-to-frontier path rather than the whole tree. Total
// emit cost is the sum over internal nodes of the products of sibling
// subtree leaf counts: worst case O(N*L) for a star tree, far lower for
// balanced trees.
func (t *Tree[N, L]) DistanceMatrix() []LeafPair[N] {
	numLeaves := t.NumLeaves()
	out := make([]LeafPair[N], 0, numLeaves*(numLeaves-1)/2)
	leafDists := make(map[N]map[N]float64)

	post := t.Postorder()
	for node, ok := post.Next(); ok; node, ok = post.Next() {
		if t.IsLeaf(node) {
			leafDists[node] = map[N]float64{node: 0}
			continue
		}

		kids := t.children[node]
		for i := 0; i < len(kids)-1; i++ {
			iDists := leafDists[kids[i]]
			iEdge := float64(t.EdgeLength(kids[i]))
			for j := i + 1; j < len(kids); j++ {
				jDists := leafDists[kids[j]]
				shift := iEdge + float64(t.EdgeLength(kids[j]))
				for leafI, distI := range iDists {
					for leafJ, distJ := range jDists {
						out = append(out, LeafPair[N]{U: leafI, V: leafJ, Dist: distI + distJ + shift})
					}
				}
			}
		}

		merged := make(map[N]float64)
		for _, child := range kids {
			edge := float64(t.EdgeLength(child))
			for leaf, d := range leafDists[child] {
				merged[leaf] = d + edge
			}
			delete(leafDists, child)
		}
		leafDists[node] = merged
	}
	return out
}

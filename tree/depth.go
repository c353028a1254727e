package tree

// RootDists returns the weighted distance from the root to every node,
// indexed by node id. A single ascending pass suffices because every
// parent id is smaller than its children's ids.
func (t *Tree[N, L]) RootDists() []float64 {
	null := NullID[N]()
	dists := make([]float64, len(t.parent))
	for node := range t.parent {
		if p := t.parent[node]; p != null {
			dists[node] = dists[p] + float64(t.EdgeLength(N(node)))
		}
	}
	return dists
}

// NumDescendants returns, for every node, the count of nodes in its
// subtree excluding itself (0 for leaves). A single descending pass folds
// each node's count into its parent.
func (t *Tree[N, L]) NumDescendants() []uint64 {
	null := NullID[N]()
	counts := make([]uint64, len(t.parent))
	for node := len(t.parent) - 1; node >= 0; node-- {
		if p := t.parent[node]; p != null {
			counts[p] += counts[node] + 1
		}
	}
	return counts
}

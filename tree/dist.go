package tree

// TotalBranchLength sums the edge lengths of the selected node classes in a
// single linear scan. With both flags false the result is 0.
func (t *Tree[N, L]) TotalBranchLength(includeInternal, includeLeaves bool) float64 {
	if !includeInternal && !includeLeaves {
		return 0
	}
	var tot float64
	for node := range t.parent {
		if t.IsLeaf(N(node)) {
			if includeLeaves {
				tot += float64(t.EdgeLength(N(node)))
			}
		} else if includeInternal {
			tot += float64(t.EdgeLength(N(node)))
		}
	}
	return tot
}

// AvgBranchLength averages the edge lengths of the selected node classes.
// With both flags false, or when no node matches the filter, the result
// is 0.
func (t *Tree[N, L]) AvgBranchLength(includeInternal, includeLeaves bool) float64 {
	if !includeInternal && !includeLeaves {
		return 0
	}
	var tot float64
	var count int
	for node := range t.parent {
		if t.IsLeaf(N(node)) {
			if includeLeaves {
				tot += float64(t.EdgeLength(N(node)))
				count++
			}
		} else if includeInternal {
			tot += float64(t.EdgeLength(N(node)))
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return tot / float64(count)
}

// Dist returns the weighted path distance between u and v.
//
// Identical nodes and direct parent/child pairs resolve in O(1). Otherwise
// both nodes walk toward the root accumulating running distance into a
// per-node map until one walk lands on a node the other walk has already
// priced; the answer is the sum of the two partial distances there. Cost is
// O(depth(u) + depth(v)).
func (t *Tree[N, L]) Dist(u, v N) float64 {
	if u == v {
		return 0
	}
	if t.parent[v] == u {
		return float64(t.EdgeLength(v))
	}
	if t.parent[u] == v {
		return float64(t.EdgeLength(u))
	}

	null := NullID[N]()
	uDists := map[N]float64{u: 0}
	c, d := u, float64(0)
	for p := t.parent[c]; p != null; p = t.parent[c] {
		d += float64(t.EdgeLength(c))
		uDists[p] = d
		c = p
	}

	if du, ok := uDists[v]; ok {
		return du // u is a descendant of v
	}
	c, d = v, 0
	for p := t.parent[c]; p != null; p = t.parent[c] {
		d += float64(t.EdgeLength(c))
		if du, ok := uDists[p]; ok {
			return du + d
		}
		c = p
	}
	return 0 // disconnected ids cannot occur in a well-formed tree
}

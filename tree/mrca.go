package tree

// MRCA returns the most recent common ancestor of nodes: the deepest node
// that is an ancestor of (or equal to) every input node. Duplicates in the
// input are ignored. An empty input is a precondition violation and returns
// NullID.
//
// The walk is multi-source and upward: a FIFO queue is seeded with the
// input set, and each popped node bumps a visit counter; the first node
// whose counter reaches the input size is the MRCA, since every ancestor on
// a converging path is visited at most once per descendant branch before
// convergence. Cost is O(sum of input depths).
func (t *Tree[N, L]) MRCA(nodes []N) N {
	null := NullID[N]()
	if len(nodes) == 0 {
		return null
	}

	seen := make(map[N]struct{}, len(nodes))
	queue := make([]N, 0, len(nodes))
	for _, n := range nodes {
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}

	total := len(queue)
	count := make(map[N]int, 2*total)
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		count[curr]++
		if count[curr] == total {
			return curr
		}
		if p := t.parent[curr]; p != null {
			queue = append(queue, p)
		}
	}
	return null
}

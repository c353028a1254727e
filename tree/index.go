package tree

// LabelIndex maps labels to node ids for repeated lookups. Build it once
// after construction; it is not updated when the tree is mutated.
type LabelIndex[N ID] struct {
	byLabel map[string]N
}

// BuildLabelIndex scans every node once and records the lowest id per
// label, matching FindLabel's first-match semantics. Unlabeled nodes
// (empty labels) are not indexed.
func BuildLabelIndex[N ID, L Length](t *Tree[N, L]) *LabelIndex[N] {
	ix := &LabelIndex[N]{byLabel: make(map[string]N, len(t.label))}
	for node, l := range t.label {
		if l == "" {
			continue
		}
		if _, dup := ix.byLabel[l]; !dup {
			ix.byLabel[l] = N(node)
		}
	}
	return ix
}

// Lookup returns the node labeled name, or NullID when absent.
func (ix *LabelIndex[N]) Lookup(name string) N {
	if node, ok := ix.byLabel[name]; ok {
		return node
	}
	return NullID[N]()
}

// Len returns the number of distinct indexed labels.
func (ix *LabelIndex[N]) Len() int { return len(ix.byLabel) }

package tree

import (
	"errors"
	"fmt"
)

// Validate checks the store's structural invariants: container widths
// agree, the root's parent is the sentinel, every other node's parent id is
// strictly smaller than its own, and parent/children pointers agree in both
// directions. It is O(n) and intended for tests and integrity checks after
// external construction, not for hot paths.
func (t *Tree[N, L]) Validate() error {
	n := len(t.parent)
	if len(t.children) != n {
		return fmt.Errorf("tree: children width %d != parent width %d", len(t.children), n)
	}
	if t.label != nil && len(t.label) != n {
		return fmt.Errorf("tree: label width %d != parent width %d", len(t.label), n)
	}
	if t.length != nil && len(t.length) != n {
		return fmt.Errorf("tree: length width %d != parent width %d", len(t.length), n)
	}
	if n == 0 {
		return nil
	}

	null := NullID[N]()
	if t.parent[0] != null {
		return errors.New("tree: root parent is not the null sentinel")
	}
	var childTotal int
	for node := 0; node < n; node++ {
		if node > 0 {
			p := t.parent[node]
			if p == null || uint64(p) >= uint64(node) {
				return fmt.Errorf("tree: node %d has parent %d, want a smaller id", node, p)
			}
		}
		for _, child := range t.children[node] {
			if uint64(child) >= uint64(n) {
				return fmt.Errorf("tree: node %d lists out-of-range child %d", node, child)
			}
			if t.parent[child] != N(node) {
				return fmt.Errorf("tree: node %d lists child %d whose parent is %d", node, child, t.parent[child])
			}
		}
		childTotal += len(t.children[node])
	}
	if childTotal != n-1 {
		return fmt.Errorf("tree: %d child links for %d nodes, want %d", childTotal, n, n-1)
	}
	return nil
}

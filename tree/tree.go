package tree

import (
	"errors"
	"fmt"
)

// Config controls what a new Tree stores per node.
type Config struct {
	// StoreLabels keeps a label slot per node. Disable to save memory when
	// only topology and lengths matter.
	StoreLabels bool

	// StoreLengths keeps an edge-length slot per node (the weight of the
	// edge from the node to its parent).
	StoreLengths bool

	// Reserve pre-sizes the per-node containers for roughly this many nodes.
	// Purely a performance hint; the containers grow past it as needed.
	Reserve int
}

// DefaultConfig stores both labels and lengths with no reservation.
func DefaultConfig() Config {
	return Config{StoreLabels: true, StoreLengths: true}
}

// Tree is the arena store. All per-node data lives in parallel slices
// aligned by node id. The zero node is the root once created; nodes are
// append-only and never deleted individually.
type Tree[N ID, L Length] struct {
	parent   []N
	children [][]N
	label    []string // nil when labels are not stored
	length   []L      // nil when lengths are not stored

	numLeaves uint64 // cached leaf count; 0 means "not computed"
}

// New returns an empty Tree configured by cfg. The first AddChild call with
// the NullID parent seeds the root.
func New[N ID, L Length](cfg Config) *Tree[N, L] {
	t := &Tree[N, L]{}
	if cfg.Reserve > 0 {
		t.parent = make([]N, 0, cfg.Reserve)
		t.children = make([][]N, 0, cfg.Reserve)
	}
	if cfg.StoreLabels {
		t.label = make([]string, 0, cfg.Reserve)
	}
	if cfg.StoreLengths {
		t.length = make([]L, 0, cfg.Reserve)
	}
	return t
}

// AddChild appends a new node under parentNode and returns its id. Passing
// NullID creates the root, which is only valid on an empty tree. Children
// are registered in creation order, so sibling order always matches the
// order children were first encountered.
func (t *Tree[N, L]) AddChild(parentNode N) (N, error) {
	null := NullID[N]()
	if parentNode == null {
		if len(t.parent) != 0 {
			return null, errors.New("tree: root already exists")
		}
	} else if uint64(parentNode) >= uint64(len(t.parent)) {
		return null, fmt.Errorf("tree: parent id %d out of range (%d nodes)", parentNode, len(t.parent))
	}

	id := N(len(t.parent))
	t.parent = append(t.parent, parentNode)
	t.children = append(t.children, nil)
	if t.label != nil {
		t.label = append(t.label, "")
	}
	if t.length != nil {
		t.length = append(t.length, 0)
	}
	if parentNode != null {
		t.children[parentNode] = append(t.children[parentNode], id)
	}
	t.numLeaves = 0
	return id, nil
}

// Root returns the root node id. Only meaningful on a non-empty tree.
func (t *Tree[N, L]) Root() N { return 0 }

// IsRoot reports whether node is the root.
func (t *Tree[N, L]) IsRoot(node N) bool { return node == 0 }

// IsLeaf reports whether node has no children.
func (t *Tree[N, L]) IsLeaf(node N) bool { return len(t.children[node]) == 0 }

// Parent returns the parent id of node, or NullID for the root.
func (t *Tree[N, L]) Parent(node N) N { return t.parent[node] }

// Children returns node's children in first-encountered order. The slice is
// the store's own backing array and must not be modified.
func (t *Tree[N, L]) Children(node N) []N { return t.children[node] }

// NumNodes returns the total node count.
func (t *Tree[N, L]) NumNodes() int { return len(t.parent) }

// NumLeaves returns the leaf count. The first call after a mutation scans
// all nodes; subsequent calls are O(1).
func (t *Tree[N, L]) NumLeaves() int {
	if t.numLeaves == 0 {
		var n uint64
		for node := range t.children {
			if len(t.children[node]) == 0 {
				n++
			}
		}
		t.numLeaves = n
	}
	return int(t.numLeaves)
}

// NumInternal returns the count of non-leaf nodes.
func (t *Tree[N, L]) NumInternal() int { return t.NumNodes() - t.NumLeaves() }

// HasLabels reports whether this tree stores labels.
func (t *Tree[N, L]) HasLabels() bool { return t.label != nil }

// Label returns node's label, or "" when labels are not stored.
func (t *Tree[N, L]) Label(node N) string {
	if t.label == nil {
		return ""
	}
	return t.label[node]
}

// SetLabel sets node's label. If the tree was built without label storage,
// storage is enabled and every existing node gets an empty label first.
func (t *Tree[N, L]) SetLabel(node N, label string) {
	if t.label == nil {
		t.label = make([]string, len(t.parent))
	}
	t.label[node] = label
}

// HasLengths reports whether this tree stores edge lengths.
func (t *Tree[N, L]) HasLengths() bool { return t.length != nil }

// EdgeLength returns the length of the edge from node to its parent, or 0
// when lengths are not stored.
func (t *Tree[N, L]) EdgeLength(node N) L {
	if t.length == nil {
		return 0
	}
	return t.length[node]
}

// SetEdgeLength sets node's incident edge length. If the tree was built
// without length storage, storage is enabled and every existing node gets a
// zero length first.
func (t *Tree[N, L]) SetEdgeLength(node N, length L) {
	if t.length == nil {
		t.length = make([]L, len(t.parent))
	}
	t.length[node] = length
}

// FindLabel returns the lowest-id node whose label equals name, or NullID
// when no node matches (or labels are not stored). Linear scan; build a
// LabelIndex for repeated lookups.
func (t *Tree[N, L]) FindLabel(name string) N {
	if t.label != nil {
		for node, l := range t.label {
			if l == name {
				return N(node)
			}
		}
	}
	return NullID[N]()
}

// Clone returns a deep copy sharing no storage with the receiver.
func (t *Tree[N, L]) Clone() *Tree[N, L] {
	c := &Tree[N, L]{
		parent:    append([]N(nil), t.parent...),
		children:  make([][]N, len(t.children)),
		numLeaves: t.numLeaves,
	}
	for i, kids := range t.children {
		if len(kids) > 0 {
			c.children[i] = append([]N(nil), kids...)
		}
	}
	if t.label != nil {
		c.label = append([]string{}, t.label...)
	}
	if t.length != nil {
		c.length = append([]L{}, t.length...)
	}
	return c
}

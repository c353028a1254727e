package tree

// Traversal iterators. All are single-pass and forward-only; restart one by
// calling the corresponding Tree method again. The store must not be
// mutated between an iterator's creation and its exhaustion.

// PreorderIter yields node ids in ascending order. Because ids are assigned
// in first-encounter order during construction, every node is yielded
// before any of its descendants.
type PreorderIter[N ID] struct {
	next, end uint64
}

// Preorder returns an iterator over all nodes, root first.
func (t *Tree[N, L]) Preorder() *PreorderIter[N] {
	return &PreorderIter[N]{end: uint64(len(t.parent))}
}

// Next returns the next node id, or false when the traversal is done.
func (it *PreorderIter[N]) Next() (N, bool) {
	if it.next >= it.end {
		return NullID[N](), false
	}
	node := N(it.next)
	it.next++
	return node, true
}

// PostorderIter yields node ids in descending order, so every node is
// yielded after all of its descendants.
type PostorderIter[N ID] struct {
	next uint64 // 1-based to avoid underflow; 0 means exhausted
}

// Postorder returns an iterator over all nodes, root last.
func (t *Tree[N, L]) Postorder() *PostorderIter[N] {
	return &PostorderIter[N]{next: uint64(len(t.parent))}
}

// Next returns the next node id, or false when the traversal is done.
func (it *PostorderIter[N]) Next() (N, bool) {
	if it.next == 0 {
		return NullID[N](), false
	}
	it.next--
	return N(it.next), true
}

// LevelOrderIter yields node ids breadth-first from the root: depth is
// non-decreasing across the sequence, and nodes of equal depth appear in
// the order their parents were dequeued, then in children order.
type LevelOrderIter[N ID, L Length] struct {
	t     *Tree[N, L]
	queue []N
}

// LevelOrder returns a breadth-first iterator from the root.
func (t *Tree[N, L]) LevelOrder() *LevelOrderIter[N, L] {
	it := &LevelOrderIter[N, L]{t: t}
	if len(t.parent) > 0 {
		it.queue = append(it.queue, t.Root())
	}
	return it
}

// Next returns the next node id, or false when the traversal is done.
func (it *LevelOrderIter[N, L]) Next() (N, bool) {
	if len(it.queue) == 0 {
		return NullID[N](), false
	}
	node := it.queue[0]
	it.queue = it.queue[1:]
	it.queue = append(it.queue, it.t.children[node]...)
	return node, true
}

// LeavesIter yields only the nodes with zero children, in ascending id
// order (which for leaves matches their left-to-right order in the source).
type LeavesIter[N ID, L Length] struct {
	t    *Tree[N, L]
	next uint64
}

// Leaves returns an iterator over the leaves.
func (t *Tree[N, L]) Leaves() *LeavesIter[N, L] {
	return &LeavesIter[N, L]{t: t}
}

// Next returns the next leaf id, or false when the traversal is done.
func (it *LeavesIter[N, L]) Next() (N, bool) {
	for it.next < uint64(len(it.t.parent)) {
		node := N(it.next)
		it.next++
		if it.t.IsLeaf(node) {
			return node, true
		}
	}
	return NullID[N](), false
}

// ChildIter yields a node's children in first-encountered order.
type ChildIter[N ID] struct {
	kids []N
	i    int
}

// ChildIterOf returns an iterator over node's children.
func (t *Tree[N, L]) ChildIterOf(node N) *ChildIter[N] {
	return &ChildIter[N]{kids: t.children[node]}
}

// Next returns the next child id, or false when the children are exhausted.
func (it *ChildIter[N]) Next() (N, bool) {
	if it.i >= len(it.kids) {
		return NullID[N](), false
	}
	node := it.kids[it.i]
	it.i++
	return node, true
}

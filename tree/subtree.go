package tree

// ExtractSubtree returns a new, independently owned tree whose root (node
// 0) corresponds to node in the receiver. Labels and lengths are copied
// verbatim when stored. The copy walks the source subtree with an explicit
// stack, remapping old ids to new sequential ids as nodes are discovered;
// the new ids still satisfy the parent-before-child ordering invariant.
func (t *Tree[N, L]) ExtractSubtree(node N) *Tree[N, L] {
	sub := New[N, L](Config{StoreLabels: t.HasLabels(), StoreLengths: t.HasLengths()})
	root, _ := sub.AddChild(NullID[N]())

	type remap struct{ old, new N }
	stack := []remap{{old: node, new: root}}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sub.label != nil {
			sub.label[curr.new] = t.label[curr.old]
		}
		if sub.length != nil {
			sub.length[curr.new] = t.length[curr.old]
		}
		for _, child := range t.children[curr.old] {
			id, _ := sub.AddChild(curr.new)
			stack = append(stack, remap{old: child, new: id})
		}
	}
	return sub
}

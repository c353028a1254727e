package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSubtree_Root(t *testing.T) {
	tr := buildNested(t)
	sub := tr.ExtractSubtree(tr.Root())

	require.Equal(t, tr.NumNodes(), sub.NumNodes())
	require.Equal(t, tr.NumLeaves(), sub.NumLeaves())
	require.Equal(t, tr.Newick(), sub.Newick())
	require.NoError(t, sub.Validate())
}

func TestExtractSubtree_Clade(t *testing.T) {
	tr := buildNested(t) // ((a,b)c,(d,e)f)r
	c := tr.FindLabel("c")
	sub := tr.ExtractSubtree(c)

	require.Equal(t, 3, sub.NumNodes())
	require.Equal(t, 2, sub.NumLeaves())
	require.Equal(t, "c", sub.Label(sub.Root()))
	require.Equal(t, NullID[uint32](), sub.Parent(sub.Root()))

	labels := map[string]bool{}
	leaves := sub.Leaves()
	for node, ok := leaves.Next(); ok; node, ok = leaves.Next() {
		labels[sub.Label(node)] = true
	}
	require.Equal(t, map[string]bool{"a": true, "b": true}, labels)
	require.NoError(t, sub.Validate())
}

func TestExtractSubtree_IsIndependent(t *testing.T) {
	tr := buildNested(t)
	sub := tr.ExtractSubtree(tr.FindLabel("f"))

	sub.SetLabel(sub.Root(), "renamed")
	_, err := sub.AddChild(sub.Root())
	require.NoError(t, err)

	require.Equal(t, "f", tr.Label(4))
	require.Equal(t, 7, tr.NumNodes())
}

func TestExtractSubtree_Leaf(t *testing.T) {
	tr := buildNested(t)
	sub := tr.ExtractSubtree(tr.FindLabel("a"))

	require.Equal(t, 1, sub.NumNodes())
	require.Equal(t, "a", sub.Label(sub.Root()))
	require.True(t, sub.IsLeaf(sub.Root()))
}

func TestExtractSubtree_RespectsStorageOptOut(t *testing.T) {
	tr := New[uint32, float32](Config{})
	root, _ := tr.AddChild(NullID[uint32]())
	_, err := tr.AddChild(root)
	require.NoError(t, err)

	sub := tr.ExtractSubtree(root)
	require.False(t, sub.HasLabels())
	require.False(t, sub.HasLengths())
	require.Equal(t, 2, sub.NumNodes())
}

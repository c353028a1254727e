package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelIndex_Lookup(t *testing.T) {
	tr := buildNested(t)
	ix := BuildLabelIndex(tr)

	require.Equal(t, 7, ix.Len())
	require.Equal(t, tr.FindLabel("a"), ix.Lookup("a"))
	require.Equal(t, tr.FindLabel("r"), ix.Lookup("r"))
	require.Equal(t, NullID[uint32](), ix.Lookup("missing"))
}

func TestLabelIndex_FirstMatchWins(t *testing.T) {
	tr := New[uint32, float32](DefaultConfig())
	r, _ := tr.AddChild(NullID[uint32]())
	a, _ := tr.AddChild(r)
	b, _ := tr.AddChild(r)
	tr.SetLabel(a, "dup")
	tr.SetLabel(b, "dup")

	ix := BuildLabelIndex(tr)
	require.Equal(t, a, ix.Lookup("dup"))
	require.Equal(t, tr.FindLabel("dup"), ix.Lookup("dup"))
}

func TestLabelIndex_SkipsEmptyLabels(t *testing.T) {
	tr := New[uint32, float32](DefaultConfig())
	r, _ := tr.AddChild(NullID[uint32]())
	_, err := tr.AddChild(r)
	require.NoError(t, err)

	ix := BuildLabelIndex(tr)
	require.Equal(t, 0, ix.Len())
	require.Equal(t, NullID[uint32](), ix.Lookup(""))
}

func TestLabelIndex_UnlabeledStore(t *testing.T) {
	tr := New[uint32, float32](Config{})
	_, err := tr.AddChild(NullID[uint32]())
	require.NoError(t, err)

	ix := BuildLabelIndex(tr)
	require.Equal(t, 0, ix.Len())
}

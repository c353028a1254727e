package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMRCA(t *testing.T) {
	tr := buildNested(t) // ((a,b)c,(d,e)f)r

	require.Equal(t, uint32(1), tr.MRCA([]uint32{2, 3}))    // a,b -> c
	require.Equal(t, uint32(0), tr.MRCA([]uint32{2, 5}))    // a,d -> r
	require.Equal(t, uint32(1), tr.MRCA([]uint32{1, 2}))    // c,a -> c (ancestor in set)
	require.Equal(t, uint32(4), tr.MRCA([]uint32{5, 6, 4})) // d,e,f -> f
	require.Equal(t, uint32(2), tr.MRCA([]uint32{2}))
	require.Equal(t, uint32(0), tr.MRCA([]uint32{0, 6}))
}

func TestMRCA_AllLeavesIsRoot(t *testing.T) {
	tr := buildNested(t)
	leaves := drain(t, tr.Leaves().Next)
	require.Equal(t, tr.Root(), tr.MRCA(leaves))
}

func TestMRCA_DuplicatesIgnored(t *testing.T) {
	tr := buildNested(t)
	require.Equal(t, uint32(1), tr.MRCA([]uint32{2, 2, 3, 3}))
}

func TestMRCA_EmptyInputReturnsNull(t *testing.T) {
	tr := buildNested(t)
	require.Equal(t, NullID[uint32](), tr.MRCA(nil))
}

func TestDist(t *testing.T) {
	tr := buildNested(t) // unit edges

	require.Equal(t, 0.0, tr.Dist(3, 3))
	require.Equal(t, 1.0, tr.Dist(1, 2)) // parent/child shortcut
	require.Equal(t, 1.0, tr.Dist(2, 1)) // reversed
	require.Equal(t, 2.0, tr.Dist(2, 3)) // siblings via c
	require.Equal(t, 4.0, tr.Dist(2, 6)) // a -> c -> r -> f -> e
	require.Equal(t, 2.0, tr.Dist(0, 2)) // root to grandchild (ancestor pair)
	require.Equal(t, 2.0, tr.Dist(2, 0)) // reversed ancestor pair
}

func TestDist_SelfIsZeroForAllNodes(t *testing.T) {
	tr := buildNested(t)
	pre := tr.Preorder()
	for node, ok := pre.Next(); ok; node, ok = pre.Next() {
		require.Equal(t, 0.0, tr.Dist(node, node))
	}
}

func TestDist_WeightedChain(t *testing.T) {
	// r -> x (0.5) -> y (0.25) -> z (2)
	tr := New[uint32, float32](DefaultConfig())
	r, _ := tr.AddChild(NullID[uint32]())
	x, _ := tr.AddChild(r)
	y, _ := tr.AddChild(x)
	z, _ := tr.AddChild(y)
	tr.SetEdgeLength(x, 0.5)
	tr.SetEdgeLength(y, 0.25)
	tr.SetEdgeLength(z, 2)

	require.InDelta(t, 2.75, tr.Dist(r, z), 1e-9)
	require.InDelta(t, 2.75, tr.Dist(z, r), 1e-9)
	require.InDelta(t, 0.75, tr.Dist(r, y), 1e-9)
	require.InDelta(t, 2.25, tr.Dist(x, z), 1e-9)
}

func TestBranchLengthAggregates(t *testing.T) {
	tr := buildExample(t) // (A:1,B:2)C:0

	require.Equal(t, 3.0, tr.TotalBranchLength(true, true))
	require.Equal(t, 3.0, tr.TotalBranchLength(false, true))
	require.Equal(t, 0.0, tr.TotalBranchLength(true, false))
	require.Equal(t, 0.0, tr.TotalBranchLength(false, false))

	require.InDelta(t, 1.0, tr.AvgBranchLength(true, true), 1e-9)
	require.InDelta(t, 1.5, tr.AvgBranchLength(false, true), 1e-9)
	require.Equal(t, 0.0, tr.AvgBranchLength(true, false))
	require.Equal(t, 0.0, tr.AvgBranchLength(false, false))
}

func TestRootDists(t *testing.T) {
	tr := buildNested(t)
	dists := tr.RootDists()

	require.Len(t, dists, 7)
	require.Equal(t, 0.0, dists[0])
	require.Equal(t, 1.0, dists[1])
	require.Equal(t, 2.0, dists[2])
	require.Equal(t, 2.0, dists[6])
}

func TestNumDescendants(t *testing.T) {
	tr := buildNested(t)
	counts := tr.NumDescendants()

	require.Len(t, counts, 7)
	require.Equal(t, uint64(6), counts[0])
	require.Equal(t, uint64(2), counts[1])
	require.Equal(t, uint64(2), counts[4])
	require.Equal(t, uint64(0), counts[2])
	require.Equal(t, uint64(0), counts[6])
}

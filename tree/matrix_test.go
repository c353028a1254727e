package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pairKey normalizes an unordered leaf pair by label.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func matrixByLabel(t *testing.T, tr *Compact) map[[2]string]float64 {
	t.Helper()
	out := map[[2]string]float64{}
	for _, pair := range tr.DistanceMatrix() {
		key := pairKey(tr.Label(pair.U), tr.Label(pair.V))
		_, dup := out[key]
		require.False(t, dup, "pair %v emitted twice", key)
		out[key] = pair.Dist
	}
	return out
}

func TestDistanceMatrix_Example(t *testing.T) {
	tr := buildExample(t) // (A:1,B:2)C:0
	m := matrixByLabel(t, tr)

	require.Len(t, m, 1)
	require.InDelta(t, 3.0, m[pairKey("A", "B")], 1e-9)
}

func TestDistanceMatrix_Nested(t *testing.T) {
	tr := buildNested(t) // ((a,b)c,(d,e)f)r, unit edges
	m := matrixByLabel(t, tr)

	leaves := tr.NumLeaves()
	require.Len(t, m, leaves*(leaves-1)/2)

	require.InDelta(t, 2.0, m[pairKey("a", "b")], 1e-9)
	require.InDelta(t, 2.0, m[pairKey("d", "e")], 1e-9)
	require.InDelta(t, 4.0, m[pairKey("a", "d")], 1e-9)
	require.InDelta(t, 4.0, m[pairKey("b", "e")], 1e-9)
}

func TestDistanceMatrix_AgreesWithPairwiseDist(t *testing.T) {
	tr := buildNested(t)
	for _, pair := range tr.DistanceMatrix() {
		require.InDelta(t, tr.Dist(pair.U, pair.V), pair.Dist, 1e-6,
			"pair (%d,%d)", pair.U, pair.V)
	}
}

func TestDistanceMatrix_MultifurcatingAndUnary(t *testing.T) {
	// (x:1,y:2,z:3,(w:4)u:5)r — a trifurcation plus a unary internal node.
	tr := New[uint32, float32](DefaultConfig())
	r, _ := tr.AddChild(NullID[uint32]())
	x, _ := tr.AddChild(r)
	y, _ := tr.AddChild(r)
	z, _ := tr.AddChild(r)
	u, _ := tr.AddChild(r)
	w, _ := tr.AddChild(u)
	for node, label := range map[uint32]string{x: "x", y: "y", z: "z", u: "u", w: "w"} {
		tr.SetLabel(node, label)
	}
	tr.SetEdgeLength(x, 1)
	tr.SetEdgeLength(y, 2)
	tr.SetEdgeLength(z, 3)
	tr.SetEdgeLength(u, 5)
	tr.SetEdgeLength(w, 4)

	m := matrixByLabel(t, tr)
	require.Len(t, m, 6) // C(4,2)
	require.InDelta(t, 3.0, m[pairKey("x", "y")], 1e-9)
	require.InDelta(t, 5.0, m[pairKey("y", "z")], 1e-9)
	require.InDelta(t, 10.0, m[pairKey("x", "w")], 1e-9)
	require.InDelta(t, 12.0, m[pairKey("z", "w")], 1e-9)
}

func TestDistanceMatrix_SingleLeaf(t *testing.T) {
	tr := New[uint32, float32](DefaultConfig())
	_, err := tr.AddChild(NullID[uint32]())
	require.NoError(t, err)

	require.Empty(t, tr.DistanceMatrix())
}

func BenchmarkDistanceMatrix(b *testing.B) {
	// Complete binary tree with 1024 leaves, unit edges.
	tr := New[uint32, float32](Config{StoreLengths: true, Reserve: 2048})
	root, _ := tr.AddChild(NullID[uint32]())
	frontier := []uint32{root}
	for depth := 0; depth < 10; depth++ {
		var next []uint32
		for _, node := range frontier {
			l, _ := tr.AddChild(node)
			r, _ := tr.AddChild(node)
			tr.SetEdgeLength(l, 1)
			tr.SetEdgeLength(r, 1)
			next = append(next, l, r)
		}
		frontier = next
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pairs := tr.DistanceMatrix()
		if len(pairs) != 1024*1023/2 {
			b.Fatalf("got %d pairs", len(pairs))
		}
	}
}

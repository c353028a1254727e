package tree

// ID constrains the integer width of node ids. uint32 supports trees of up
// to about 4 billion nodes; uint64 lifts that limit at the cost of doubling
// the id storage.
type ID interface {
	~uint32 | ~uint64
}

// Length constrains the floating-point precision of edge lengths.
type Length interface {
	~float32 | ~float64
}

// NullID returns the "no node" sentinel for an id width: the maximum
// representable value. It is the parent of the root and the not-found
// result of label lookups and MRCA.
func NullID[N ID]() N {
	var zero N
	return ^zero
}

// Compact is the default profile: 32-bit ids, single-precision lengths.
type Compact = Tree[uint32, float32]

// Wide trades memory for capacity: 64-bit ids, double-precision lengths.
type Wide = Tree[uint64, float64]

// Package tree implements a memory-compact, index-addressed phylogenetic
// tree store and the structural and distance queries over it.
//
// # Overview
//
// A Tree owns all node data in parallel slices indexed by node id; there are
// no per-node heap objects and no pointers between nodes. Node ids are
// assigned in the order nodes are first created, so ascending id order is a
// preorder and every node's id is strictly greater than its parent's.
//
// # Key Types
//
//   - Tree[N, L]: the arena store, generic over node-id width (uint32 or
//     uint64) and edge-length precision (float32 or float64)
//   - Compact, Wide: the two standard instantiations
//   - PreorderIter, PostorderIter, LevelOrderIter, LeavesIter, ChildIter:
//     single-pass traversal iterators
//   - LeafPair: one entry of the all-pairs leaf distance matrix
//   - LabelIndex: a one-pass label-to-node lookup table
//
// # Node Identity
//
// A node is an unsigned integer index. Node 0 is always the root. The
// maximum representable value (NullID) is the "no node" sentinel, used as
// the root's parent and as the not-found result of lookups and MRCA.
//
// # Memory Model
//
// Label and edge-length storage are each optional; when disabled the
// corresponding slice is absent entirely, not per-node empty. Enabling one
// after construction (via SetLabel or SetEdgeLength) backfills default
// values for every existing node.
//
// # Thread Safety
//
// A Tree is safe for concurrent reads. It must not be mutated while any
// iterator derived from it is live; there is no internal locking.
package tree

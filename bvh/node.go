// Package bvh builds and queries a Bounding Volume Hierarchy over a
// triangle mesh: a SAH-driven top-down partitioner (Build) and an
// iterative, caller-stacked ray/AABB traversal (IntersectLeaves).
package bvh

import "github.com/achilleasa/polaris/mesh"

// noChild marks the absence of a child link. Root is always index 0.
const noChild = int32(-1)

// DefaultMaxDepth bounds both the effective recursion depth of the
// builder and the traversal stack a caller must provide.
const DefaultMaxDepth = 15

// A Node is either an internal node (Left and Right both set, Faces
// unused after build) or a leaf (Left and Right both noChild, Faces
// holding every primitive the node owns). Child indices, when present,
// are always greater than the parent's index.
type Node struct {
	AABB  mesh.AABB
	Left  int32
	Right int32
	Faces []mesh.Face
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == noChild && n.Right == noChild
}

// A BVH is an arena of Nodes built over a Mesh. Nodes are addressed by
// index; the root is always Nodes[0]. Once Build returns, the arena is
// read-only and safe for concurrent queries provided each caller supplies
// its own traversal stack.
type BVH struct {
	Mesh     *mesh.Mesh
	Nodes    []Node
	MaxDepth int
}

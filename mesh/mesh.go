// Package mesh defines the triangle mesh container that the BVH builder
// consumes. Populating a Mesh (triangulating, deduplicating vertices,
// reporting malformed input) is the job of an external loader; this
// package only carries the data and its invariants.
package mesh

import "github.com/achilleasa/polaris/types"

// A Mesh is an ordered vertex pool plus an ordered list of faces indexing
// it. Every face's three indices must be valid positions in Vertices; a
// Mesh exclusively owns both slices.
type Mesh struct {
	Vertices []types.Vec3
	Faces    []Face
}

// BBox returns the tight componentwise bound of every vertex in the mesh.
// A mesh with zero vertices returns the empty AABB.
func (m *Mesh) BBox() AABB {
	box := EmptyAABB()
	for _, v := range m.Vertices {
		box = box.Absorb(v)
	}
	return box
}

package mesh

// A Face is a triangle primitive expressed as three indices into the owning
// Mesh's vertex pool.
type Face [3]uint32

// BBox returns the componentwise tight bound of the face's three vertices
// in the given mesh.
func (f Face) BBox(m *Mesh) AABB {
	box := EmptyAABB()
	box = box.Absorb(m.Vertices[f[0]])
	box = box.Absorb(m.Vertices[f[1]])
	box = box.Absorb(m.Vertices[f[2]])
	return box
}

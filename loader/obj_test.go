package loader

import (
	"strings"
	"testing"
)

func TestReadTriangle(t *testing.T) {
	src := `
# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Vertices) != 3 {
		t.Fatalf("expected 3 vertices; got %d", len(m.Vertices))
	}
	if len(m.Faces) != 1 {
		t.Fatalf("expected 1 face; got %d", len(m.Faces))
	}
	if m.Faces[0][0] != 0 || m.Faces[0][1] != 1 || m.Faces[0][2] != 2 {
		t.Fatalf("unexpected face indices: %v", m.Faces[0])
	}
}

func TestReadQuadTriangulatesByFan(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Faces) != 2 {
		t.Fatalf("expected a quad to triangulate into 2 faces; got %d", len(m.Faces))
	}
	if m.Faces[0][0] != 0 || m.Faces[0][1] != 1 || m.Faces[0][2] != 2 {
		t.Fatalf("unexpected first triangle: %v", m.Faces[0])
	}
	if m.Faces[1][0] != 0 || m.Faces[1][1] != 2 || m.Faces[1][2] != 3 {
		t.Fatalf("unexpected second triangle: %v", m.Faces[1])
	}
}

func TestReadIgnoresUVAndNormalIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Faces) != 1 {
		t.Fatalf("expected 1 face; got %d", len(m.Faces))
	}
	if m.Faces[0][0] != 0 || m.Faces[0][1] != 1 || m.Faces[0][2] != 2 {
		t.Fatalf("unexpected face indices: %v", m.Faces[0])
	}
}

func TestReadNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Faces[0][0] != 0 || m.Faces[0][1] != 1 || m.Faces[0][2] != 2 {
		t.Fatalf("unexpected face indices from negative form: %v", m.Faces[0])
	}
}

func TestReadMalformedVertex(t *testing.T) {
	src := "v 0 0\n"
	_, err := Read(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected an error for a vertex record with too few coordinates")
	}
}

func TestReadFaceIndexOutOfRange(t *testing.T) {
	src := "v 0 0 0\nf 1 2 3\n"
	_, err := Read(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected an error for a face referencing an out-of-range vertex")
	}
}

func TestReadFaceTooFewVertices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nf 1 2\n"
	_, err := Read(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected an error for a face with fewer than 3 vertices")
	}
}

func TestReadEmptyInputYieldsEmptyMesh(t *testing.T) {
	m, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Vertices) != 0 || len(m.Faces) != 0 {
		t.Fatalf("expected an empty mesh; got %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
}

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	src := "\n# comment\n\nv 0 0 0\n# another\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Vertices) != 3 || len(m.Faces) != 1 {
		t.Fatalf("unexpected mesh: %+v", m)
	}
}

// Package loader reads triangle mesh geometry from disk. It is the
// external collaborator that feeds a mesh.Mesh to the BVH builder; the
// core package never reads files itself.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/achilleasa/polaris/mesh"
	"github.com/achilleasa/polaris/types"
)

var (
	// ErrMalformedVertex is returned when a "v" record carries fewer than
	// three coordinates or one of its first three is not numeric.
	ErrMalformedVertex = errors.New("loader: malformed vertex record")

	// ErrMalformedFace is returned when an "f" record references fewer
	// than three vertices or an index outside the vertex list.
	ErrMalformedFace = errors.New("loader: malformed face record")
)

// Load reads the Wavefront OBJ file at path and returns its geometry as a
// mesh.Mesh.
func Load(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return m, nil
}

// Read parses Wavefront OBJ "v" and "f" records from r. Faces with more
// than three indices are triangulated by fanning from the first vertex.
// Per-vertex texture/normal indices (the "vi/vt/vn" form) are accepted
// but discarded, since the geometry this package feeds into only needs
// vertex positions.
func Read(r io.Reader) (*mesh.Mesh, error) {
	m := &mesh.Mesh{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		switch tokens[0] {
		case "v":
			v, err := parseVertex(tokens)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			faces, err := parseFace(tokens, len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			m.Faces = append(m.Faces, faces...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

func parseVertex(tokens []string) (types.Vec3, error) {
	if len(tokens) < 4 {
		return types.Vec3{}, fmt.Errorf("%w: expected 3 coordinates; got %d", ErrMalformedVertex, len(tokens)-1)
	}

	var v types.Vec3
	for i := 0; i < 3; i++ {
		coord, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("%w: %s", ErrMalformedVertex, err)
		}
		v[i] = float32(coord)
	}
	return v, nil
}

// parseFace triangulates an "f" record by fanning from its first vertex:
// an n-gon v0 v1 ... v(n-1) becomes the triangles (v0,v1,v2), (v0,v2,v3),
// and so on. Each argument may carry "/"-separated uv/normal indices,
// which are ignored. Indices are 1-based and may be negative to count
// back from the end of the vertex list, per the OBJ format.
func parseFace(tokens []string, vertexCount int) ([]mesh.Face, error) {
	args := tokens[1:]
	if len(args) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 vertex indices; got %d", ErrMalformedFace, len(args))
	}

	indices := make([]uint32, len(args))
	for i, arg := range args {
		idxStr := strings.SplitN(arg, "/", 2)[0]
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedFace, err)
		}

		switch {
		case idx > 0:
			idx--
		case idx < 0:
			idx = vertexCount + idx
		default:
			return nil, fmt.Errorf("%w: vertex index 0 is invalid", ErrMalformedFace)
		}
		if idx < 0 || idx >= vertexCount {
			return nil, fmt.Errorf("%w: vertex index %s out of range for %d vertices", ErrMalformedFace, idxStr, vertexCount)
		}
		indices[i] = uint32(idx)
	}

	faces := make([]mesh.Face, 0, len(indices)-2)
	for i := 1; i < len(indices)-1; i++ {
		faces = append(faces, mesh.Face{indices[0], indices[i], indices[i+1]})
	}
	return faces, nil
}

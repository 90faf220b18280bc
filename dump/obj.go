// Package dump writes the leaf bounding boxes of a built tree out as
// Wavefront OBJ geometry, for visual inspection in a 3D viewer.
package dump

import (
	"bufio"
	"fmt"
	"io"

	"github.com/achilleasa/polaris/bvh"
	"github.com/achilleasa/polaris/mesh"
)

// WriteLeafBoxes walks tree in pre-order from the root and writes each
// leaf's AABB as an 8-vertex, 6-face cube to w. Vertex indices are
// 1-based and accumulate across leaves so the resulting file is a single
// valid OBJ document.
func WriteLeafBoxes(w io.Writer, tree *bvh.BVH) error {
	bw := bufio.NewWriter(w)

	vertexOffset := 1
	var walk func(idx int32) error
	walk = func(idx int32) error {
		node := tree.Nodes[idx]
		if node.IsLeaf() {
			if err := writeCube(bw, node.AABB, vertexOffset); err != nil {
				return err
			}
			vertexOffset += 8
			return nil
		}
		if err := walk(node.Left); err != nil {
			return err
		}
		return walk(node.Right)
	}

	if len(tree.Nodes) > 0 {
		if err := walk(0); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writeCube emits the 8 corners of box and its 6 quad faces, offsetting
// face indices by vertexOffset so multiple cubes can share one file.
func writeCube(w *bufio.Writer, box mesh.AABB, vertexOffset int) error {
	min, max := box.Min, box.Max

	corners := [8][3]float32{
		{min[0], min[1], min[2]}, // 0: bottom-left-front
		{max[0], min[1], min[2]}, // 1: bottom-right-front
		{max[0], max[1], min[2]}, // 2: top-right-front
		{min[0], max[1], min[2]}, // 3: top-left-front
		{min[0], min[1], max[2]}, // 4: bottom-left-back
		{max[0], min[1], max[2]}, // 5: bottom-right-back
		{max[0], max[1], max[2]}, // 6: top-right-back
		{min[0], max[1], max[2]}, // 7: top-left-back
	}
	for _, c := range corners {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", c[0], c[1], c[2]); err != nil {
			return err
		}
	}

	o := vertexOffset
	faces := [6][4]int{
		{o + 0, o + 1, o + 2, o + 3}, // front
		{o + 4, o + 5, o + 6, o + 7}, // back
		{o + 0, o + 1, o + 5, o + 4}, // bottom
		{o + 3, o + 2, o + 6, o + 7}, // top
		{o + 0, o + 4, o + 7, o + 3}, // left
		{o + 1, o + 5, o + 6, o + 2}, // right
	}
	for _, f := range faces {
		if _, err := fmt.Fprintf(w, "f %d %d %d %d\n", f[0], f[1], f[2], f[3]); err != nil {
			return err
		}
	}

	return nil
}

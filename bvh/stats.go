package bvh

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/achilleasa/polaris/mesh"
	"github.com/olekukonko/tablewriter"
)

// Depth returns the longest path from the root to any leaf. A
// single-node tree has depth 0.
func (bvh *BVH) Depth() int {
	return bvh.depth(0)
}

func (bvh *BVH) depth(n int32) int {
	node := &bvh.Nodes[n]
	if node.IsLeaf() {
		return 0
	}
	left := bvh.depth(node.Left)
	right := bvh.depth(node.Right)
	if left > right {
		return 1 + left
	}
	return 1 + right
}

// NNodes returns the length of the node arena.
func (bvh *BVH) NNodes() int {
	return len(bvh.Nodes)
}

// NLeaves returns the number of nodes with no children.
func (bvh *BVH) NLeaves() int {
	return bvh.nLeaves(0)
}

func (bvh *BVH) nLeaves(n int32) int {
	node := &bvh.Nodes[n]
	if node.IsLeaf() {
		return 1
	}
	return bvh.nLeaves(node.Left) + bvh.nLeaves(node.Right)
}

// NFaces returns the total number of faces held across all leaves.
func (bvh *BVH) NFaces() int {
	return bvh.nFaces(0)
}

func (bvh *BVH) nFaces(n int32) int {
	node := &bvh.Nodes[n]
	if node.IsLeaf() {
		return len(node.Faces)
	}
	return bvh.nFaces(node.Left) + bvh.nFaces(node.Right)
}

// BBox returns the AABB stored at nodeIndex.
func (bvh *BVH) BBox(nodeIndex int32) mesh.AABB {
	return bvh.Nodes[nodeIndex].AABB
}

// Stats renders a tabular summary of the built tree.
func (bvh *BVH) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})

	root := bvh.Nodes[0].AABB
	table.Append([]string{"Nodes", strconv.Itoa(bvh.NNodes())})
	table.Append([]string{"Leaves", strconv.Itoa(bvh.NLeaves())})
	table.Append([]string{"Depth", strconv.Itoa(bvh.Depth())})
	table.Append([]string{"Faces", strconv.Itoa(bvh.NFaces())})
	table.Append([]string{"Root min", vecString(root.Min)})
	table.Append([]string{"Root max", vecString(root.Max)})

	table.Render()
	return buf.String()
}

func vecString(v [3]float32) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}

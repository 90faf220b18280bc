package bvh

import (
	"math"
	"testing"

	gomesh "github.com/achilleasa/polaris/mesh"
	"github.com/achilleasa/polaris/types"
)

// S3: ray hits the cube.
func TestIntersectLeavesS3Hit(t *testing.T) {
	b := Build(unitCubeMesh(), 2, nil)

	stack := make([]int32, b.MaxDepth)
	stack[0] = 0

	hit, leafIdx, tEnter, tExit, _ := b.IntersectLeaves(types.Vec3{10, 0.5, 0.5}, types.Vec3{-1, 0, 0}, stack, 1)
	if !hit {
		t.Fatalf("expected a hit")
	}
	if leafIdx < 0 {
		t.Fatalf("expected a valid leaf index; got %d", leafIdx)
	}
	if tEnter != 9.0 || tExit != 10.0 {
		t.Fatalf("expected tEnter=9.0 tExit=10.0; got tEnter=%v tExit=%v", tEnter, tExit)
	}
}

// S4: ray misses the cube entirely.
func TestIntersectLeavesS4Miss(t *testing.T) {
	b := Build(unitCubeMesh(), 2, nil)

	stack := make([]int32, b.MaxDepth)
	stack[0] = 0

	hit, leafIdx, _, _, _ := b.IntersectLeaves(types.Vec3{10, 10, 10}, types.Vec3{1, 0, 0}, stack, 1)
	if hit {
		t.Fatalf("expected a miss")
	}
	if leafIdx != -1 {
		t.Fatalf("expected leaf index -1; got %d", leafIdx)
	}
}

// S5: any traversal over an empty mesh's BVH reports no hit.
func TestIntersectLeavesS5EmptyMesh(t *testing.T) {
	b := Build(&gomesh.Mesh{}, 5, nil)

	stack := make([]int32, b.MaxDepth)
	stack[0] = 0

	hit, _, _, _, _ := b.IntersectLeaves(types.Vec3{0, 0, 0}, types.Vec3{1, 0, 0}, stack, 1)
	if hit {
		t.Fatalf("expected no hit against an empty mesh's BVH")
	}
}

// S6: a ray from the middle returns the low-X leaf first.
func TestIntersectLeavesS6NearFirst(t *testing.T) {
	m := twoDisjointTriangles()
	b := Build(m, 1, nil)

	stack := make([]int32, b.MaxDepth)
	stack[0] = 0

	hit, leafIdx, _, _, _ := b.IntersectLeaves(types.Vec3{5, 0.5, 0.33}, types.Vec3{-1, 0, 0}, stack, 1)
	if !hit {
		t.Fatalf("expected a hit")
	}

	leaf := b.Nodes[leafIdx]
	if leaf.AABB.Max[0] > 1 {
		t.Fatalf("expected the near (low-X) leaf to be returned first; got leaf AABB %v", leaf.AABB)
	}
}

func TestIntersectLeavesEmptyStackReturnsNoHit(t *testing.T) {
	b := Build(unitCubeMesh(), 2, nil)

	stack := make([]int32, b.MaxDepth)
	hit, leafIdx, tEnter, tExit, size := b.IntersectLeaves(types.Vec3{0, 0, 0}, types.Vec3{1, 0, 0}, stack, 0)
	if hit || leafIdx != -1 || tEnter != 0 || tExit != 0 || size != 0 {
		t.Fatalf("expected (false, -1, 0, 0, 0) on an empty stack; got (%v, %d, %v, %v, %d)", hit, leafIdx, tEnter, tExit, size)
	}
}

// Traversal soundness: the leaf with the smallest t_enter among all hit
// leaves is the one returned, verified by brute-force comparison against
// every leaf's own slab test.
func TestIntersectLeavesSoundness(t *testing.T) {
	b := Build(unitCubeMesh(), DefaultMaxDepth, nil)

	o := types.Vec3{0.5, 0.5, 10}
	d := types.Vec3{0, 0, -1}

	stack := make([]int32, b.MaxDepth)
	stack[0] = 0
	hit, leafIdx, tEnter, _, _ := b.IntersectLeaves(o, d, stack, 1)
	if !hit {
		t.Fatalf("expected a hit")
	}

	bestT := float32(math.MaxFloat32)
	for i := range b.Nodes {
		if !b.Nodes[i].IsLeaf() {
			continue
		}
		if h, te, _ := b.Nodes[i].AABB.Intersect(o, d); h && te < bestT {
			bestT = te
		}
	}

	if tEnter != bestT {
		t.Fatalf("expected returned tEnter=%v to equal the smallest leaf tEnter=%v", tEnter, bestT)
	}
	_ = leafIdx
}

func TestDepthNNodesNLeavesBBox(t *testing.T) {
	b := Build(unitCubeMesh(), 0, nil)
	if b.Depth() != 0 {
		t.Fatalf("expected single-node tree to have depth 0; got %d", b.Depth())
	}
	if b.NNodes() != 1 {
		t.Fatalf("expected 1 node; got %d", b.NNodes())
	}
	if b.NLeaves() != 1 {
		t.Fatalf("expected 1 leaf; got %d", b.NLeaves())
	}
	box := b.BBox(0)
	if box.Min != (types.Vec3{0, 0, 0}) || box.Max != (types.Vec3{1, 1, 1}) {
		t.Fatalf("unexpected root bbox: %v", box)
	}
}

package bvh

import (
	"math"
	"sort"
	"time"

	"github.com/achilleasa/polaris/log"
	"github.com/achilleasa/polaris/mesh"
)

// An Axis identifies one of the three coordinate axes considered as a
// split candidate.
type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

const (
	// Traversal and triangle-intersection costs used by the SAH. Both
	// are fixed constants per the spec, not tunables.
	cTrav float32 = 1.0
	cTri  float32 = 1.0
)

// A ScoreStrategy scores a candidate split of a node's faces into a left
// and right partition; lower is better. Two strategies are provided
// (ExtentHeuristic, SurfaceAreaHeuristic) because the reference lineage
// this builder was distilled from carries both, and neither should be
// frozen out by picking one.
type ScoreStrategy interface {
	Score(axis Axis, parent mesh.AABB, left mesh.AABB, leftCount int, right mesh.AABB, rightCount int) float32
}

var (
	// ExtentHeuristic scores a split using the chosen axis' extent
	// ratio between child and parent boxes, weighted by primitive
	// count. This is the strategy Build uses by default.
	ExtentHeuristic = extentHeuristic{}

	// SurfaceAreaHeuristic scores a split using the full surface area
	// of each child box, ignoring the split axis. This is the
	// classical SAH cost function.
	SurfaceAreaHeuristic = surfaceAreaHeuristic{}
)

type extentHeuristic struct{}

// Score implements the SAH cost
// C(i) = C_trav + (A_L/A_P)*leftCount*C_tri + (A_R/A_P)*rightCount*C_tri
// where A_X is the extent of the corresponding box along axis.
func (extentHeuristic) Score(axis Axis, parent mesh.AABB, left mesh.AABB, leftCount int, right mesh.AABB, rightCount int) float32 {
	parentExtent := parent.Extent(int(axis))
	if parentExtent <= 0 {
		return math.MaxFloat32
	}

	leftCost := left.Extent(int(axis)) / parentExtent * float32(leftCount) * cTri
	rightCost := right.Extent(int(axis)) / parentExtent * float32(rightCount) * cTri
	return cTrav + leftCost + rightCost
}

type surfaceAreaHeuristic struct{}

// Score implements the classical SAH: leftCount*surfaceArea(left) +
// rightCount*surfaceArea(right).
func (surfaceAreaHeuristic) Score(_ Axis, _ mesh.AABB, left mesh.AABB, leftCount int, right mesh.AABB, rightCount int) float32 {
	return float32(leftCount)*surfaceArea(left) + float32(rightCount)*surfaceArea(right)
}

func surfaceArea(b mesh.AABB) float32 {
	s := b.Size()
	return 2 * (s[0]*s[1] + s[1]*s[2] + s[0]*s[2])
}

type builder struct {
	logger   log.Logger
	mesh     *mesh.Mesh
	nodes    []Node
	strategy ScoreStrategy
}

// Build constructs a BVH over m using the surface-area-driven top-down
// partitioner. depthLimit bounds the recursion and is clamped to
// DefaultMaxDepth; a negative depthLimit is clamped to 0. A nil strategy
// defaults to ExtentHeuristic.
func Build(m *mesh.Mesh, depthLimit int, strategy ScoreStrategy) *BVH {
	if strategy == nil {
		strategy = ExtentHeuristic
	}
	if depthLimit > DefaultMaxDepth {
		depthLimit = DefaultMaxDepth
	}
	if depthLimit < 0 {
		depthLimit = 0
	}

	b := &builder{
		logger:   log.New("bvh"),
		mesh:     m,
		nodes:    make([]Node, 0, 1),
		strategy: strategy,
	}

	start := time.Now()

	root := Node{
		AABB:  m.BBox(),
		Left:  noChild,
		Right: noChild,
		Faces: append([]mesh.Face(nil), m.Faces...),
	}
	b.nodes = append(b.nodes, root)
	b.grow(0, depthLimit)

	b.logger.Debugf("bvh build time: %d ms, nodes: %d, depth limit: %d", time.Since(start).Nanoseconds()/1e6, len(b.nodes), depthLimit)

	return &BVH{
		Mesh:     m,
		Nodes:    b.nodes,
		MaxDepth: DefaultMaxDepth,
	}
}

// grow partitions the faces owned by b.nodes[nodeIdx], pushing up to two
// children into the arena and recursing into each. Indices are used
// throughout rather than pointers into b.nodes because append may
// reallocate the backing array during recursion.
func (b *builder) grow(nodeIdx int, remainingDepth int) {
	faces := b.nodes[nodeIdx].Faces
	if remainingDepth <= 0 || len(faces) <= 1 {
		return
	}

	nodeBox := b.nodes[nodeIdx].AABB
	size := nodeBox.Size()
	axis := XAxis
	if size[1] > size[0] && size[1] > size[2] {
		axis = YAxis
	}
	if size[2] > size[0] && size[2] > size[1] {
		axis = ZAxis
	}

	sorted := append([]mesh.Face(nil), faces...)
	faceBoxes := make([]mesh.AABB, len(sorted))
	for i, f := range sorted {
		faceBoxes[i] = f.BBox(b.mesh)
	}
	sort.Stable(&faceSorter{faces: sorted, boxes: faceBoxes, axis: int(axis)})

	F := len(sorted)

	// prefix[i] = union of faceBoxes[0:i]; suffix[i] = union of faceBoxes[i:F].
	// Computed once so every candidate split reads an exact componentwise
	// union of its partition rather than approximating from the
	// extreme faces in the sorted order.
	prefix := make([]mesh.AABB, F+1)
	prefix[0] = mesh.EmptyAABB()
	for i := 0; i < F; i++ {
		prefix[i+1] = prefix[i].Union(faceBoxes[i])
	}
	suffix := make([]mesh.AABB, F+1)
	suffix[F] = mesh.EmptyAABB()
	for i := F - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1].Union(faceBoxes[i])
	}

	bestSplit := 1
	bestCost := b.strategy.Score(axis, nodeBox, prefix[1], 1, suffix[1], F-1)
	for i := 2; i < F; i++ {
		cost := b.strategy.Score(axis, nodeBox, prefix[i], i, suffix[i], F-i)
		if cost < bestCost {
			bestCost = cost
			bestSplit = i
		}
	}

	leftNode := Node{
		AABB:  prefix[bestSplit],
		Left:  noChild,
		Right: noChild,
		Faces: append([]mesh.Face(nil), sorted[:bestSplit]...),
	}
	rightNode := Node{
		AABB:  suffix[bestSplit],
		Left:  noChild,
		Right: noChild,
		Faces: append([]mesh.Face(nil), sorted[bestSplit:]...),
	}

	leftIdx := len(b.nodes)
	b.nodes = append(b.nodes, leftNode)
	b.nodes[nodeIdx].Left = int32(leftIdx)
	b.grow(leftIdx, remainingDepth-1)

	rightIdx := len(b.nodes)
	b.nodes = append(b.nodes, rightNode)
	b.nodes[nodeIdx].Right = int32(rightIdx)
	b.grow(rightIdx, remainingDepth-1)

	b.nodes[nodeIdx].Faces = nil
}

// faceSorter sorts a face list (with precomputed per-face boxes) by the
// min-corner coordinate along a chosen axis.
type faceSorter struct {
	faces []mesh.Face
	boxes []mesh.AABB
	axis  int
}

func (s *faceSorter) Len() int { return len(s.faces) }
func (s *faceSorter) Less(i, j int) bool {
	return s.boxes[i].Min[s.axis] < s.boxes[j].Min[s.axis]
}
func (s *faceSorter) Swap(i, j int) {
	s.faces[i], s.faces[j] = s.faces[j], s.faces[i]
	s.boxes[i], s.boxes[j] = s.boxes[j], s.boxes[i]
}

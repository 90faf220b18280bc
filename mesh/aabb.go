package mesh

import (
	"math"

	"github.com/achilleasa/polaris/types"
)

// An AABB is an axis-aligned bounding box defined by its min/max corners.
//
// An AABB is empty iff Min[c] > Max[c] for some component c. EmptyAABB
// returns the "null" box (Min = +Inf, Max = -Inf) so that absorbing any
// point into it yields a valid, tight box.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// EmptyAABB returns the identity value for AABB union: absorbing any point
// or box into it produces that point/box unchanged.
func EmptyAABB() AABB {
	return AABB{
		Min: types.Vec3{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))},
		Max: types.Vec3{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))},
	}
}

// Absorb grows the box to also contain v and returns the result.
func (b AABB) Absorb(v types.Vec3) AABB {
	return AABB{
		Min: types.MinVec3(b.Min, v),
		Max: types.MaxVec3(b.Max, v),
	}
}

// Union returns the componentwise union of two boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// Size returns Max - Min componentwise.
func (b AABB) Size() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// Extent returns the box's size along a single axis (0=X, 1=Y, 2=Z).
func (b AABB) Extent(axis int) float32 {
	return b.Max[axis] - b.Min[axis]
}

// Contains reports whether v lies inside the box on all axes, inclusive.
func (b AABB) Contains(v types.Vec3) bool {
	return v[0] >= b.Min[0] && v[0] <= b.Max[0] &&
		v[1] >= b.Min[1] && v[1] <= b.Max[1] &&
		v[2] >= b.Min[2] && v[2] <= b.Max[2]
}

// Intersect runs the branch-free ray/AABB slab test.
//
// It computes t1 = (min-o)/d and t2 = (max-o)/d componentwise, then takes
// tEnter as the largest per-axis min and tExit as the smallest per-axis
// max. hit is true iff tExit >= 0 and tEnter <= tExit. An empty box
// (Min[c] > Max[c] for some c) never reports a hit. When hit is false
// the returned t values are unspecified and must be ignored.
//
// d may have zero components for axis-aligned rays; the resulting +/-Inf
// values collapse correctly under the min/max reduction as long as the
// ray origin does not lie exactly on that slab's plane.
func (b AABB) Intersect(o, d types.Vec3) (hit bool, tEnter, tExit float32) {
	if b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2] {
		return false, 0, 0
	}

	t1 := b.Min.Sub(o).Div(d)
	t2 := b.Max.Sub(o).Div(d)

	tMin := types.MinVec3(t1, t2)
	tMax := types.MaxVec3(t1, t2)

	tEnter = max(tMin[0], max(tMin[1], tMin[2]))
	tExit = min(tMax[0], min(tMax[1], tMax[2]))

	if tExit < 0 || tEnter > tExit {
		return false, 0, 0
	}
	return true, tEnter, tExit
}

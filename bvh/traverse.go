package bvh

import "github.com/achilleasa/polaris/types"

// IntersectLeaves walks the tree for a single ray, returning the nearest
// leaf whose AABB is entered.
//
// stack is a caller-owned buffer of node indices sized >= bvh.MaxDepth;
// stackSize entries starting at stack[0] are valid on entry, and the
// caller must have pushed the root index (stack[0] = 0, stackSize = 1)
// before the first call for a new ray. IntersectLeaves mutates stack's
// contents in place and returns the resulting stack size so the same
// buffer can be reused across rays.
//
// When the stack empties without finding a hit leaf, it returns
// (false, -1, 0, 0, 0).
func (bvh *BVH) IntersectLeaves(o, d types.Vec3, stack []int32, stackSize int) (hit bool, leafIndex int32, tEnter, tExit float32, newStackSize int) {
	for stackSize > 0 {
		stackSize--
		n := stack[stackSize]
		node := &bvh.Nodes[n]

		if node.IsLeaf() {
			h, te, tx := node.AABB.Intersect(o, d)
			if !h {
				continue
			}
			return true, n, te, tx, stackSize
		}

		leftIdx, rightIdx := node.Left, node.Right
		hitL, t1L, _ := bvh.Nodes[leftIdx].AABB.Intersect(o, d)
		hitR, t1R, _ := bvh.Nodes[rightIdx].AABB.Intersect(o, d)

		// Swap so that, of the two children that hit, the farther
		// ends up in leftIdx (pushed first) and the nearer in
		// rightIdx (pushed last, so it's popped next). On equal entry
		// distances the left child is popped first.
		if hitL && hitR && t1L <= t1R {
			leftIdx, rightIdx = rightIdx, leftIdx
			hitL, hitR = hitR, hitL
		}

		if hitL && stackSize < bvh.MaxDepth {
			stack[stackSize] = leftIdx
			stackSize++
		}
		if hitR && stackSize < bvh.MaxDepth {
			stack[stackSize] = rightIdx
			stackSize++
		}
	}

	return false, -1, 0, 0, 0
}

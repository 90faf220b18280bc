// Package batch fans a slice of rays out across a built tree. It is a
// thin adapter over bvh.IntersectLeaves for callers driving many rays at
// once (e.g. a bound array-oriented caller); the traversal core itself
// stays single-ray and synchronous.
package batch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/achilleasa/polaris/bvh"
	"github.com/achilleasa/polaris/types"
)

var (
	// ErrShapeMismatch is returned when the ray origin/direction/stack
	// arguments do not describe the same number of rays.
	ErrShapeMismatch = errors.New("batch: mismatched shapes")

	// ErrStackTooSmall is returned when the per-ray stack width is
	// less than the tree's MaxDepth.
	ErrStackTooSmall = errors.New("batch: stack too small")
)

// Result holds one ray's traversal outcome.
type Result struct {
	Hit       bool
	LeafIndex int32
	TEnter    float32
	TExit     float32
}

// Intersect validates the shapes of its inputs and then traverses tree
// once per ray, returning one Result per ray in the same order.
//
// origins and directions must both have length n. stacks must also have
// length n, and every stacks[i] must have width >= tree.MaxDepth;
// stackSizes[i] is the number of valid entries already pushed onto
// stacks[i] (ordinarily 1, with stacks[i][0] set to the root index).
// Shape errors are reported before any ray is traversed.
func Intersect(tree *bvh.BVH, origins, directions []types.Vec3, stacks [][]int32, stackSizes []int) ([]Result, error) {
	n := len(origins)
	if len(directions) != n || len(stacks) != n || len(stackSizes) != n {
		return nil, fmt.Errorf("%w: origins=%d directions=%d stacks=%d stack_sizes=%d", ErrShapeMismatch, n, len(directions), len(stacks), len(stackSizes))
	}
	for i, s := range stacks {
		if len(s) < tree.MaxDepth {
			return nil, fmt.Errorf("%w: ray %d has stack width %d, need >= %d", ErrStackTooSmall, i, len(s), tree.MaxDepth)
		}
	}

	results := make([]Result, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			hit, leafIdx, tEnter, tExit, _ := tree.IntersectLeaves(origins[i], directions[i], stacks[i], stackSizes[i])
			results[i] = Result{Hit: hit, LeafIndex: leafIdx, TEnter: tEnter, TExit: tExit}
		}(i)
	}
	wg.Wait()

	return results, nil
}

package cmd

import (
	"errors"

	"github.com/achilleasa/polaris/bvh"
	"github.com/achilleasa/polaris/loader"
	"github.com/achilleasa/polaris/types"
	"github.com/urfave/cli"
)

// TraceRay loads a mesh, builds a BVH and reports the nearest leaf hit by
// a single ray supplied via CLI flags.
func TraceRay(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing input obj file")
	}

	objFile := ctx.Args().First()
	m, err := loader.Load(objFile)
	if err != nil {
		return err
	}

	tree := bvh.Build(m, ctx.Int("depth-limit"), scoreStrategyFromFlag(ctx.String("heuristic")))

	o := types.Vec3{
		float32(ctx.Float64("ox")),
		float32(ctx.Float64("oy")),
		float32(ctx.Float64("oz")),
	}
	d := types.Vec3{
		float32(ctx.Float64("dx")),
		float32(ctx.Float64("dy")),
		float32(ctx.Float64("dz")),
	}

	stack := make([]int32, tree.MaxDepth)
	stack[0] = 0
	hit, leafIdx, tEnter, tExit, _ := tree.IntersectLeaves(o, d, stack, 1)
	if !hit {
		logger.Notice("no hit")
		return nil
	}

	logger.Noticef("hit leaf %d: t_enter=%.4f t_exit=%.4f", leafIdx, tEnter, tExit)
	return nil
}

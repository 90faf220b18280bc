package cmd

import (
	"errors"

	"github.com/achilleasa/polaris/bvh"
	"github.com/achilleasa/polaris/loader"
	"github.com/urfave/cli"
)

// BuildBVH loads a mesh from an OBJ file, partitions it into a BVH and
// prints a tabular summary of the resulting tree.
func BuildBVH(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing input obj file")
	}

	depthLimit := ctx.Int("depth-limit")
	strategy := scoreStrategyFromFlag(ctx.String("heuristic"))
	if strategy == nil && ctx.String("heuristic") != "" {
		return errors.New(`unknown heuristic; expected "extent" or "surface-area"`)
	}

	objFile := ctx.Args().First()
	logger.Noticef("loading mesh: %s", objFile)
	m, err := loader.Load(objFile)
	if err != nil {
		return err
	}

	logger.Noticef("building bvh with depth limit %d", depthLimit)
	tree := bvh.Build(m, depthLimit, strategy)

	logger.Noticef("bvh information:\n%s", tree.Stats())

	return nil
}

func scoreStrategyFromFlag(name string) bvh.ScoreStrategy {
	switch name {
	case "", "extent":
		return bvh.ExtentHeuristic
	case "surface-area":
		return bvh.SurfaceAreaHeuristic
	default:
		return nil
	}
}

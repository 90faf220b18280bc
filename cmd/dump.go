package cmd

import (
	"errors"
	"os"

	"github.com/achilleasa/polaris/bvh"
	"github.com/achilleasa/polaris/dump"
	"github.com/achilleasa/polaris/loader"
	"github.com/urfave/cli"
)

// DumpLeafBoxes loads a mesh, builds a BVH and writes its leaf bounding
// boxes out as OBJ geometry for inspection in a 3D viewer.
func DumpLeafBoxes(ctx *cli.Context) error {
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

	outFile := ctx.String("out")
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := dump.WriteLeafBoxes(f, tree); err != nil {
		return err
	}

	logger.Noticef("wrote %d leaf boxes to %s", tree.NLeaves(), outFile)
	return nil
}

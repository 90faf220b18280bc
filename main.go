package main

import (
	"os"

	"github.com/achilleasa/polaris/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "polaris"
	app.Usage = "build and query bounding volume hierarchies over triangle meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	depthLimitFlag := cli.IntFlag{
		Name:  "depth-limit",
		Value: 15,
		Usage: "maximum recursion depth for the bvh builder",
	}
	heuristicFlag := cli.StringFlag{
		Name:  "heuristic",
		Value: "extent",
		Usage: `split cost heuristic: "extent" or "surface-area"`,
	}

	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a bvh over an obj mesh and print summary statistics",
			ArgsUsage: "mesh.obj",
			Flags:     []cli.Flag{depthLimitFlag, heuristicFlag},
			Action:    cmd.BuildBVH,
		},
		{
			Name:      "dump",
			Usage:     "build a bvh and write its leaf bounding boxes as obj geometry",
			ArgsUsage: "mesh.obj",
			Flags: []cli.Flag{
				depthLimitFlag,
				heuristicFlag,
				cli.StringFlag{
					Name:  "out, o",
					Value: "leaves.obj",
					Usage: "output obj filename for the leaf boxes",
				},
			},
			Action: cmd.DumpLeafBoxes,
		},
		{
			Name:      "trace",
			Usage:     "trace a single ray against a mesh's bvh",
			ArgsUsage: "mesh.obj",
			Flags: []cli.Flag{
				depthLimitFlag,
				heuristicFlag,
				cli.Float64Flag{Name: "ox", Usage: "ray origin x"},
				cli.Float64Flag{Name: "oy", Usage: "ray origin y"},
				cli.Float64Flag{Name: "oz", Usage: "ray origin z"},
				cli.Float64Flag{Name: "dx", Value: 0, Usage: "ray direction x"},
				cli.Float64Flag{Name: "dy", Value: 0, Usage: "ray direction y"},
				cli.Float64Flag{Name: "dz", Value: -1, Usage: "ray direction z"},
			},
			Action: cmd.TraceRay,
		},
	}

	app.Run(os.Args)
}

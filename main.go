package main

import (
	"os"

	"github.com/calderov/miniray/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "miniray"
	app.Usage = "render scenes using cpu path tracing"
	app.Version = "0.1.0"
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
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one frame of a built-in scene by stochastically sampling light
paths per pixel across a fixed pool of workers, and save the result as a
24-bit bitmap file.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "num-bounces",
					Value: 10,
					Usage: "number of indirect ray bounces",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: 90,
					Usage: "vertical field of view in degrees",
				},
				cli.StringFlag{
					Name:  "eye",
					Value: "0,0,0",
					Usage: "camera position as x,y,z",
				},
				cli.StringFlag{
					Name:  "look-at",
					Value: "0,0,-1",
					Usage: "camera target as x,y,z",
				},
				cli.StringFlag{
					Name:  "up",
					Value: "0,1,0",
					Usage: "camera up direction as x,y,z",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Value: 0,
					Usage: "lens aperture angle in degrees; 0 disables depth of field",
				},
				cli.Float64Flag{
					Name:  "focus-dist",
					Value: 1,
					Usage: "distance to the plane of perfect focus",
				},
				cli.IntFlag{
					Name:  "threads",
					Value: 0,
					Usage: "number of render workers; 0 uses all cpus",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base seed for the random sampler",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "three-spheres",
					Usage: "name of the built-in scene to render",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.bmp",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}

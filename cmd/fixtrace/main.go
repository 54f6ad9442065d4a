// fixtrace - fixed-point ray tracer
//
// Renders a small scene of spheres, a floor and a point light using only
// integer 4.12 and 20.12 arithmetic, and animates the light along a sweep.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "fixtrace"
	app.Usage = "ray trace spheres with fixed-point arithmetic"
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
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level (debug, info, notice, warning, error)",
			EnvVar: "FIXTRACE_LOG_LEVEL",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one frame of the scene and write it to a PNG file, or to a raw
file of packed R, G, B bytes when the output name ends in .rgb or .raw.`,
			Flags:  join(sizeFlags, sceneFlags, tracerFlags, renderFlags),
			Action: RenderFrame,
		},
		{
			Name:  "animate",
			Usage: "render the light sweep to an animated GIF",
			Description: `
Move the light through three passes (down the right edge, across the top,
then diagonally) and write every frame to a looping GIF.`,
			Flags:  join(sizeFlags, sceneFlags, tracerFlags, animateFlags),
			Action: Animate,
		},
		{
			Name:        "play",
			Usage:       "play the light sweep in the terminal",
			Description: `Loop the light sweep using half-block cells. Esc, q or Ctrl+C quits; space pauses.`,
			Flags:       join(sceneFlags, tracerFlags, playFlags),
			Action:      Play,
		},
		{
			Name:        "window",
			Usage:       "play the light sweep in a desktop window",
			Description: `Loop the light sweep on an RGB565 panel shown in a window. Esc quits.`,
			Flags:       join(sizeFlags, sceneFlags, tracerFlags, playFlags, windowFlags),
			Action:      Window,
		},
		{
			Name:   "info",
			Usage:  "print camera, scene and frame statistics",
			Flags:  join(sizeFlags, sceneFlags, tracerFlags),
			Action: Info,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

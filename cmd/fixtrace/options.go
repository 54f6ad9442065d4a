package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/taigrr/fixtrace/pkg/fixed"
	"github.com/taigrr/fixtrace/pkg/geom"
	"github.com/taigrr/fixtrace/pkg/render"
	"github.com/taigrr/fixtrace/pkg/scene"
)

var sizeFlags = []cli.Flag{
	cli.IntFlag{
		Name:   "width",
		Value:  320,
		Usage:  "frame width",
		EnvVar: "FIXTRACE_WIDTH",
	},
	cli.IntFlag{
		Name:   "height",
		Value:  240,
		Usage:  "frame height",
		EnvVar: "FIXTRACE_HEIGHT",
	},
}

var sceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "scene, s",
		Usage:  "glTF/GLB scene file (default: built-in scene)",
		EnvVar: "FIXTRACE_SCENE",
	},
	cli.StringFlag{
		Name:   "light",
		Usage:  "light position as x,y,z (default: from the scene)",
		EnvVar: "FIXTRACE_LIGHT",
	},
}

var tracerFlags = []cli.Flag{
	cli.IntFlag{
		Name:   "depth",
		Value:  render.DefaultMaxDepth,
		Usage:  "maximum ray depth; 1 traces primary rays only",
		EnvVar: "FIXTRACE_DEPTH",
	},
	cli.IntFlag{
		Name:   "workers",
		Usage:  "rows rendered concurrently (0 = one per CPU)",
		EnvVar: "FIXTRACE_WORKERS",
	},
	cli.BoolFlag{
		Name:   "sky",
		Usage:  "draw a sky gradient behind the spheres",
		EnvVar: "FIXTRACE_SKY",
	},
	cli.BoolFlag{
		Name:   "nearest",
		Usage:  "show the closest sphere instead of the first one in scene order",
		EnvVar: "FIXTRACE_NEAREST",
	},
	cli.BoolFlag{
		Name:   "composite",
		Usage:  "blend reflections by sphere reflectivity (needs --depth > 1)",
		EnvVar: "FIXTRACE_COMPOSITE",
	},
}

func join(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// loadScene returns the scene selected by --scene, with the light moved to
// --light when given.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	sc := scene.Default()
	if path := ctx.String("scene"); path != "" {
		var err error
		if sc, err = scene.Load(path); err != nil {
			return nil, err
		}
		logger.Infof("loaded %d spheres from %s", len(sc.Spheres), path)
	}

	if s := ctx.String("light"); s != "" {
		pos, err := parseVec32(s)
		if err != nil {
			return nil, fmt.Errorf("--light: %w", err)
		}
		sc = sc.WithLight(pos)
	}
	return sc, nil
}

func newTracer(ctx *cli.Context) (*render.Tracer, error) {
	t := render.NewTracer()
	t.MaxDepth = ctx.Int("depth")
	t.Sky = ctx.Bool("sky")
	t.NearestHit = ctx.Bool("nearest")
	t.Composite = ctx.Bool("composite")
	if w := ctx.Int("workers"); w > 0 {
		t.Workers = w
	}
	if t.MaxDepth < 1 {
		return nil, fmt.Errorf("--depth must be at least 1, got %d", t.MaxDepth)
	}
	if t.Composite && t.MaxDepth == 1 {
		logger.Warning("--composite has no effect with --depth 1")
	}
	return t, nil
}

// newTarget allocates a camera and a frame of the same size.
func newTarget(width, height int) (*render.Camera, *render.Frame, error) {
	cam, err := render.NewCamera(width, height)
	if err != nil {
		return nil, nil, err
	}
	f, err := render.NewFrame(width, height)
	if err != nil {
		return nil, nil, err
	}
	return cam, f, nil
}

func parseVec32(s string) (fixed.Vec32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fixed.Vec32{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fixed.Vec32{}, fmt.Errorf("parse %q: %w", p, err)
		}
		if !(math.Abs(f) < geom.MaxCoord) {
			return fixed.Vec32{}, fmt.Errorf("coordinate %v out of range", f)
		}
		v[i] = f
	}
	return fixed.V32F(v[0], v[1], v[2]), nil
}

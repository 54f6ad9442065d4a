package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/taigrr/fixtrace/pkg/anim"
	"github.com/taigrr/fixtrace/pkg/render"
)

var animateFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "out, o",
		Value:  "sweep.gif",
		Usage:  "output GIF file",
		EnvVar: "FIXTRACE_OUT",
	},
	cli.IntFlag{
		Name:   "delay",
		Value:  5,
		Usage:  "delay between frames in 100ths of a second",
		EnvVar: "FIXTRACE_DELAY",
	},
	cli.BoolFlag{
		Name:   "smooth",
		Usage:  "ease the light between waypoints with springs",
		EnvVar: "FIXTRACE_SMOOTH",
	},
}

// Animate renders the light sweep to a GIF.
func Animate(ctx *cli.Context) error {
	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	tracer, err := newTracer(ctx)
	if err != nil {
		return err
	}
	cam, f, err := newTarget(ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return err
	}

	delay := ctx.Int("delay")
	if delay <= 0 {
		return fmt.Errorf("--delay must be positive, got %d", delay)
	}
	var opts []anim.Option
	if ctx.Bool("smooth") {
		opts = append(opts, anim.Smooth(max(100/delay, 1)))
	}
	driver := anim.NewDriver(anim.Sweep(), opts...)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := render.NewAnimation(delay)
	var total render.Stats
	for {
		frame, ok := driver.Next(sc)
		if !ok {
			break
		}
		stats, err := tracer.Render(runCtx, cam, frame, f)
		if err != nil {
			return fmt.Errorf("render frame %d: %w", driver.Frame(), err)
		}
		total.Add(stats)
		if err := a.Add(f); err != nil {
			return err
		}
		logger.Infof("frame %d/%d light %v", driver.Frame(), driver.Len(), frame.Light.Position)
	}

	out := ctx.String("out")
	if err := a.Save(out); err != nil {
		return err
	}
	logger.Noticef("wrote %d frames to %s", a.Len(), out)
	displayFrameStats(total)
	return nil
}

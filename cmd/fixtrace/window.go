package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/taigrr/fixtrace/pkg/present"
)

var windowFlags = []cli.Flag{
	cli.IntFlag{
		Name:   "scale",
		Value:  2,
		Usage:  "window pixels per panel pixel",
		EnvVar: "FIXTRACE_SCALE",
	},
	cli.BoolFlag{
		Name:   "hud",
		Usage:  "overlay frame number and light position",
		EnvVar: "FIXTRACE_HUD",
	},
}

// Window plays the light sweep on an RGB565 panel shown in a desktop window.
func Window(ctx *cli.Context) error {
	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	tracer, err := newTracer(ctx)
	if err != nil {
		return err
	}
	driver, fps, err := newSweepDriver(ctx)
	if err != nil {
		return err
	}
	cam, f, err := newTarget(ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return err
	}
	showHUD := ctx.Bool("hud")

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	panel := present.NewRGB565(f.Width, f.Height, nil)
	frame := 0
	step := func() error {
		frameScene, _ := driver.Next(sc)
		start := time.Now()
		if _, err := tracer.Render(runCtx, cam, frameScene, f); err != nil {
			if runCtx.Err() != nil {
				return nil
			}
			return fmt.Errorf("render: %w", err)
		}
		frame++

		var hud []string
		if showHUD {
			p := frameScene.Light.Position
			hud = []string{
				fmt.Sprintf("frame %d  %v", frame, time.Since(start).Round(time.Millisecond)),
				fmt.Sprintf("light %.2f %.2f %.2f", p.X.Float(), p.Y.Float(), p.Z.Float()),
			}
		}
		return present.Present(panel, f, hud...)
	}

	logger.Infof("opening %dx%d window (scale %d, %d fps)", f.Width, f.Height, ctx.Int("scale"), fps)
	if err := present.RunWindow(runCtx, "fixtrace", panel, ctx.Int("scale"), fps, step); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	logger.Infof("window closed after %d frames", panel.Frames())
	return nil
}

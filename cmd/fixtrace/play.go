package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/urfave/cli"

	"github.com/taigrr/fixtrace/pkg/anim"
	"github.com/taigrr/fixtrace/pkg/render"
)

var playFlags = []cli.Flag{
	cli.IntFlag{
		Name:   "fps",
		Value:  30,
		Usage:  "target frames per second",
		EnvVar: "FIXTRACE_FPS",
	},
	cli.BoolFlag{
		Name:   "smooth",
		Usage:  "ease the light between waypoints with springs",
		EnvVar: "FIXTRACE_SMOOTH",
	},
}

func newSweepDriver(ctx *cli.Context) (*anim.Driver, int, error) {
	fps := ctx.Int("fps")
	if fps <= 0 {
		return nil, 0, fmt.Errorf("--fps must be positive, got %d", fps)
	}
	opts := []anim.Option{anim.Loop()}
	if ctx.Bool("smooth") {
		opts = append(opts, anim.Smooth(fps))
	}
	return anim.NewDriver(anim.Sweep(), opts...), fps, nil
}

// Play loops the light sweep in the terminal.
func Play(ctx *cli.Context) error {
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

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	resized := make(chan [2]int, 1)
	paused := make(chan struct{}, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case <-resized:
				default:
				}
				resized <- [2]int{ev.Width, ev.Height}
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "q", "ctrl+c"):
					cancel()
					return
				case ev.MatchString("space"):
					select {
					case paused <- struct{}{}:
					default:
					}
				}
			}
		}
	}()

	termRenderer, cam, f, err := newTerminalTarget(term, width, height)
	if err != nil {
		return err
	}

	targetDuration := time.Second / time.Duration(fps)
	frameScene := sc
	stopped := false
	for {
		select {
		case <-runCtx.Done():
			return nil
		case size := <-resized:
			term.Erase()
			term.Resize(size[0], size[1])
			if termRenderer, cam, f, err = newTerminalTarget(term, size[0], size[1]); err != nil {
				return err
			}
			logger.Debugf("resized to %dx%d cells", size[0], size[1])
		case <-paused:
			stopped = !stopped
		default:
		}

		now := time.Now()
		if !stopped {
			frameScene, _ = driver.Next(sc)
		}
		if _, err := tracer.Render(runCtx, cam, frameScene, f); err != nil {
			if runCtx.Err() != nil {
				return nil
			}
			return fmt.Errorf("render: %w", err)
		}

		termRenderer.Render(f)
		if err := termRenderer.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// newTerminalTarget sizes the camera and frame to fill a cols x rows
// terminal.
func newTerminalTarget(term *uv.Terminal, cols, rows int) (*render.TerminalRenderer, *render.Camera, *render.Frame, error) {
	tr := render.NewTerminalRenderer(term, cols, rows)
	w, h := tr.FramebufferSize()
	cam, f, err := newTarget(w, h)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("terminal %dx%d: %w", cols, rows, err)
	}
	return tr, cam, f, nil
}

package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/taigrr/fixtrace/pkg/render"
)

var renderFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "out, o",
		Value:  "frame.png",
		Usage:  "output file (.png, .rgb or .raw)",
		EnvVar: "FIXTRACE_OUT",
	},
}

// RenderFrame renders a still frame.
func RenderFrame(ctx *cli.Context) error {
	out := ctx.String("out")
	save, err := frameWriter(out)
	if err != nil {
		return err
	}

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

	stats, err := tracer.Render(context.Background(), cam, sc, f)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := save(f, out); err != nil {
		return err
	}

	logger.Noticef("wrote %dx%d frame to %s", f.Width, f.Height, out)
	displayFrameStats(stats)
	return nil
}

func frameWriter(path string) (func(*render.Frame, string) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return (*render.Frame).SavePNG, nil
	case ".rgb", ".raw":
		return (*render.Frame).SaveRaw, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .png, .rgb or .raw)", ext)
	}
}

func displayFrameStats(stats render.Stats) {
	var buf bytes.Buffer
	writeStatsTable(&buf, stats)
	logger.Noticef("frame statistics\n%s", buf.String())
}

func writeStatsTable(buf *bytes.Buffer, stats render.Stats) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Rays", "Sphere hits", "Floor hits", "Misses", "Depth"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Rays),
		fmt.Sprintf("%d", stats.SphereHits),
		fmt.Sprintf("%d", stats.PlaneHits),
		fmt.Sprintf("%d", stats.Misses),
		fmt.Sprintf("%d", stats.Depth),
	})
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})
	table.Render()
}

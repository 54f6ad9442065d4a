package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/taigrr/fixtrace/pkg/fixed"
	"github.com/taigrr/fixtrace/pkg/render"
	"github.com/taigrr/fixtrace/pkg/scene"
)

// Info prints the camera, the scene and the statistics of one rendered frame.
func Info(ctx *cli.Context) error {
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

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Camera %dx%d\n", cam.Width, cam.Height)
	writeCameraTable(&buf, cam)
	fmt.Fprintf(&buf, "\nScene (%d spheres)\n", len(sc.Spheres))
	writeSceneTable(&buf, sc)
	fmt.Fprintf(&buf, "\nFrame (depth %d, %d workers)\n", tracer.MaxDepth, tracer.Workers)
	writeStatsTable(&buf, stats)

	_, err = ctx.App.Writer.Write(buf.Bytes())
	return err
}

func writeCameraTable(buf *bytes.Buffer, cam *render.Camera) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Field", "Raw", "Value"})
	rows := []struct {
		name string
		v    fixed.Vec16
	}{
		{"viewport u", cam.ViewportU},
		{"viewport v", cam.ViewportV},
		{"delta u", cam.DeltaU},
		{"delta v", cam.DeltaV},
		{"pixel 0,0", cam.Pixel00},
	}
	for _, r := range rows {
		table.Append([]string{r.name, rawVec16(r.v), realVec(r.v.To32())})
	}
	table.Render()
}

func writeSceneTable(buf *bytes.Buffer, sc *scene.Scene) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Object", "Position", "Radius", "Color", "Reflectivity"})
	for i, sp := range sc.Spheres {
		table.Append([]string{
			fmt.Sprintf("sphere %d", i),
			realVec(sp.Center),
			sp.Radius.String(),
			realVec(sp.Color.To32()),
			sp.Reflectivity.String(),
		})
	}
	table.Append([]string{"light", realVec(sc.Light.Position), "", realVec(sc.Light.Color.To32()), ""})
	table.Append([]string{"floor", realVec(sc.Floor.Point), "", "normal " + realVec(sc.Floor.Normal.To32()), ""})
	table.Append([]string{"ambient", "", "", realVec(sc.Ambient.To32()), ""})
	table.Render()
}

func rawVec16(v fixed.Vec16) string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

func realVec(v fixed.Vec32) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X.Float(), v.Y.Float(), v.Z.Float())
}

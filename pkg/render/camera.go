package render

import (
	"errors"
	"fmt"

	"github.com/taigrr/fixtrace/pkg/fixed"
	"github.com/taigrr/fixtrace/pkg/geom"
)

// Camera geometry in 4.12.
const (
	FocalLength    = fixed.One16
	ViewportHeight = fixed.Two16
)

// MaxDimension is the largest frame side the viewport deltas can resolve.
const MaxDimension = 4096

// ErrViewport is returned when a frame size cannot be expressed in 4.12.
var ErrViewport = errors.New("viewport not representable in 4.12")

// Camera is a pinhole camera at the world origin looking down -Z.
// It is computed once per frame size and reused across frames.
type Camera struct {
	Width, Height int

	ViewportU fixed.Vec16 // full viewport width along +X
	ViewportV fixed.Vec16 // full viewport height along -Y
	DeltaU    fixed.Vec16 // step between pixel columns
	DeltaV    fixed.Vec16 // step between pixel rows
	Pixel00   fixed.Vec16 // center of the top-left pixel
}

// NewCamera builds the viewport for a width x height frame. The viewport is
// 2.0 high and 2.0*width/height wide, one focal length in front of the
// origin.
func NewCamera(width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameSize, width, height)
	}
	if width > MaxDimension || height > MaxDimension || width >= 4*height {
		return nil, fmt.Errorf("%w: %dx%d", ErrViewport, width, height)
	}

	vw := fixed.FromFloat16(ViewportHeight.Float() * float64(width) / float64(height))
	c := &Camera{
		Width:     width,
		Height:    height,
		ViewportU: fixed.V16(vw, 0, 0),
		ViewportV: fixed.V16(0, -ViewportHeight, 0),
	}
	c.DeltaU = c.ViewportU.Scale(fixed.FromFloat16(1 / float64(width)))
	c.DeltaV = c.ViewportV.Scale(fixed.FromFloat16(1 / float64(height)))
	if c.DeltaU.X == 0 || c.DeltaV.Y == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrViewport, width, height)
	}

	c.Pixel00 = fixed.V16(0, 0, -FocalLength).
		Sub(c.ViewportU.Scale(fixed.Half16)).
		Sub(c.ViewportV.Scale(fixed.Half16)).
		Add(c.DeltaU.Add(c.DeltaV).Scale(fixed.Half16))
	return c, nil
}

// Direction returns the unnormalized direction through the center of pixel
// (x, y), with (0, 0) the top-left pixel.
func (c *Camera) Direction(x, y int) fixed.Vec16 {
	return c.Pixel00.Add(c.DeltaU.Times(x)).Add(c.DeltaV.Times(y))
}

// Ray returns the primary ray for pixel (x, y).
func (c *Camera) Ray(x, y int) geom.Ray {
	return geom.NewRay(fixed.Vec32{}, c.Direction(x, y))
}

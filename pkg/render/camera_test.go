package render

import (
	"errors"
	"testing"

	"github.com/taigrr/fixtrace/pkg/fixed"
)

func TestNewCameraGolden(t *testing.T) {
	c, err := NewCamera(320, 240)
	if err != nil {
		t.Fatalf("NewCamera() error = %v", err)
	}

	tests := []struct {
		name string
		got  fixed.Vec16
		want fixed.Vec16
	}{
		{"viewport u", c.ViewportU, fixed.V16(10923, 0, 0)},
		{"viewport v", c.ViewportV, fixed.V16(0, -8192, 0)},
		{"delta u", c.DeltaU, fixed.V16(34, 0, 0)},
		{"delta v", c.DeltaV, fixed.V16(0, -34, 0)},
		{"pixel 00", c.Pixel00, fixed.V16(-5444, 4079, -4096)},
		{"center", c.Direction(160, 120), fixed.V16(-4, -1, -4096)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got (%d, %d, %d), want (%d, %d, %d)",
					tc.got.X, tc.got.Y, tc.got.Z, tc.want.X, tc.want.Y, tc.want.Z)
			}
		})
	}
}

func TestCameraCorners(t *testing.T) {
	c, err := NewCamera(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	tl := c.Direction(0, 0)
	br := c.Direction(63, 47)

	if tl.X >= 0 || tl.Y <= 0 {
		t.Errorf("top-left direction %v should point up and left", tl)
	}
	if br.X <= 0 || br.Y >= 0 {
		t.Errorf("bottom-right direction %v should point down and right", br)
	}
	if tl.Z != -FocalLength || br.Z != -FocalLength {
		t.Errorf("directions should lie on the image plane: %v %v", tl, br)
	}
	if r := c.Ray(0, 0); r.Origin != (fixed.Vec32{}) || r.Dir != tl.To32() {
		t.Errorf("Ray(0, 0) = %+v", r)
	}
}

func TestNewCameraErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"zero width", 0, 10, ErrFrameSize},
		{"negative height", 10, -1, ErrFrameSize},
		{"too wide", 400, 100, ErrViewport},
		{"too large", MaxDimension + 1, MaxDimension, ErrViewport},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCamera(tc.w, tc.h)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewCamera(%d, %d) error = %v, want %v", tc.w, tc.h, err, tc.want)
			}
		})
	}
}

func TestNewCameraSinglePixel(t *testing.T) {
	c, err := NewCamera(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Direction(0, 0); got != fixed.V16(0, 0, -fixed.One16) {
		t.Errorf("single pixel direction = %v", got)
	}
}

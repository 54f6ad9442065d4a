// Package render traces a scene into an 8-bit RGB frame and presents frames
// on image files and the terminal.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// ErrFrameSize is returned for non-positive frame dimensions or when a frame
// and a camera disagree on size.
var ErrFrameSize = errors.New("invalid frame size")

// Frame is a packed RGB image: Width*Height*3 bytes, row-major, top-left
// origin, three bytes (R, G, B) per pixel.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame creates a black frame.
func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameSize, width, height)
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}, nil
}

// Clear fills the frame with a solid color.
func (f *Frame) Clear(r, g, b uint8) {
	for i := 0; i < len(f.Pix); i += 3 {
		f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
	}
}

// SetRGB sets the pixel at (x, y). Out of bounds writes are ignored.
func (f *Frame) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
}

// RGBAt returns the pixel at (x, y), or black when out of bounds.
func (f *Frame) RGBAt(x, y int) (r, g, b uint8) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0, 0, 0
	}
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// At returns the pixel at (x, y) as an opaque color.
func (f *Frame) At(x, y int) color.RGBA {
	r, g, b := f.RGBAt(x, y)
	return color.RGBA{r, g, b, 255}
}

// ToImage converts the frame to a standard Go image.RGBA.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, j := 0, 0; i < len(f.Pix); i, j = i+3, j+4 {
		img.Pix[j] = f.Pix[i]
		img.Pix[j+1] = f.Pix[i+1]
		img.Pix[j+2] = f.Pix[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// SavePNG saves the frame as a PNG file.
func (f *Frame) SavePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(out, f.ToImage()); err != nil {
		out.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return out.Close()
}

// SaveRaw writes the packed RGB bytes to path.
func (f *Frame) SaveRaw(path string) error {
	if err := os.WriteFile(path, f.Pix, 0o644); err != nil {
		return fmt.Errorf("write raw frame: %w", err)
	}
	return nil
}

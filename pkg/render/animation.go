package render

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

var errNoFrames = errors.New("encode gif: no frames")

// Animation collects frames into a looping GIF.
type Animation struct {
	// Delay between frames in 100ths of a second.
	Delay int
	gif   gif.GIF
}

// NewAnimation creates an empty animation. delay is in 100ths of a second.
func NewAnimation(delay int) *Animation {
	return &Animation{Delay: delay}
}

// Add quantizes f to the Plan 9 palette with Floyd-Steinberg dithering and
// appends it. All frames must have the size of the first one.
func (a *Animation) Add(f *Frame) error {
	if n := len(a.gif.Image); n > 0 {
		b := a.gif.Image[0].Bounds()
		if b.Dx() != f.Width || b.Dy() != f.Height {
			return fmt.Errorf("%w: frame %dx%d, animation %dx%d",
				ErrFrameSize, f.Width, f.Height, b.Dx(), b.Dy())
		}
	}
	rgba := f.ToImage()
	p := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), rgba, image.Point{})

	a.gif.Image = append(a.gif.Image, p)
	a.gif.Delay = append(a.gif.Delay, a.Delay)
	return nil
}

// Len returns the number of frames added.
func (a *Animation) Len() int {
	return len(a.gif.Image)
}

// Encode writes the animation as a GIF that loops forever.
func (a *Animation) Encode(w io.Writer) error {
	if len(a.gif.Image) == 0 {
		return errNoFrames
	}
	a.gif.LoopCount = 0
	if err := gif.EncodeAll(w, &a.gif); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// Save writes the animation to path.
func (a *Animation) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := a.Encode(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Package present pushes rendered frames to TinyGo-style displays: any
// drivers.Displayer, an in-memory RGB565 panel and a desktop window.
package present

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/taigrr/fixtrace/pkg/render"
)

// Blit copies f onto d with its top-left corner at (x0, y0). Pixels that
// fall outside the display are skipped.
func Blit(d drivers.Displayer, f *render.Frame, x0, y0 int16) {
	w, h := d.Size()
	for y := range f.Height {
		dy := int(y0) + y
		if dy < 0 || dy >= int(h) {
			continue
		}
		for x := range f.Width {
			dx := int(x0) + x
			if dx < 0 || dx >= int(w) {
				continue
			}
			r, g, b := f.RGBAt(x, y)
			d.SetPixel(int16(dx), int16(dy), color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
}

// Present draws f centered on d, overlays hud lines if any and displays
// the result.
func Present(d drivers.Displayer, f *render.Frame, hud ...string) error {
	w, h := d.Size()
	Blit(d, f, (w-int16(f.Width))/2, (h-int16(f.Height))/2)
	if len(hud) > 0 {
		DrawHUD(d, hud...)
	}
	return d.Display()
}

// DefaultTPS is the window update rate used when none is requested.
const DefaultTPS = 30

// TickRate returns the window update rate for a requested frame rate.
func TickRate(fps int) int {
	if fps <= 0 {
		return DefaultTPS
	}
	return fps
}

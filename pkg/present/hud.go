package present

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// HUD colors.
var (
	HUDForeground = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	HUDBackground = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff}
)

// HUD layout in pixels.
const (
	hudLineHeight = 10
	hudBaseline   = 8
	hudMargin     = 2
)

// HUDFont is the font used for overlay text.
var HUDFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// filler is implemented by displays that can fill rectangles natively.
type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// DrawHUD writes lines of text in the top-left corner of d, one per row.
// Displays that can fill rectangles get a solid backdrop behind each line.
func DrawHUD(d drivers.Displayer, lines ...string) {
	for i, s := range lines {
		y := int16(hudMargin + i*hudLineHeight)
		if f, ok := d.(filler); ok {
			_, w := tinyfont.LineWidth(HUDFont, s)
			_ = f.FillRectangle(0, y, int16(w)+2*hudMargin, hudLineHeight, HUDBackground)
		}
		tinyfont.WriteLine(d, HUDFont, hudMargin, y+hudBaseline, s, HUDForeground)
	}
}

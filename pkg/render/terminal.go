package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the frame to terminal cells and draws them on the screen.
// Each terminal row shows two frame rows with an upper half block: the
// foreground is the top pixel and the background the bottom pixel.
func (f *Frame) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= f.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < f.Width; col++ {
			x := col - area.Min.X
			var bg color.Color
			if botY < f.Height {
				bg = f.At(x, botY)
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: f.At(x, topY),
					Bg: bg,
				},
			})
		}
	}
}

// Display is a screen whose contents can be pushed to the terminal.
// *uv.Terminal satisfies it.
type Display interface {
	uv.Screen
	Display() error
}

// TerminalRenderer draws frames on a terminal of cols x rows cells.
type TerminalRenderer struct {
	scr  Display
	cols int
	rows int
}

// NewTerminalRenderer creates a renderer for a terminal of the given size.
func NewTerminalRenderer(scr Display, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{scr: scr, cols: cols, rows: rows}
}

// FramebufferSize returns the frame size that fills the terminal: one pixel
// per column and two per row.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.cols, t.rows * 2
}

// Render draws f on the screen buffer.
func (t *TerminalRenderer) Render(f *Frame) {
	f.Draw(t.scr, uv.Rect(0, 0, t.cols, t.rows))
}

// Flush pushes the screen buffer to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.scr.Display()
}

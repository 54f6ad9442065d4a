//go:build cgo

package present

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing panel, scaled by scale. step is
// called on every tick to draw the next frame into the panel, at TickRate(tps)
// ticks per second. It blocks until the window closes, Escape is pressed, ctx
// is canceled or step fails.
func RunWindow(ctx context.Context, title string, panel *RGB565, scale, tps int, step func() error) error {
	w, h := panel.Size()
	g := &windowGame{ctx: ctx, panel: panel, step: step}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(w)*max(scale, 1), int(h)*max(scale, 1))
	ebiten.SetTPS(TickRate(tps))
	return ebiten.RunGame(g)
}

type windowGame struct {
	ctx   context.Context
	panel *RGB565
	step  func() error
	img   *image.RGBA
	tex   *ebiten.Image
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	w, h := g.panel.Size()
	if g.tex == nil {
		g.tex = ebiten.NewImage(int(w), int(h))
	}
	g.img = g.panel.ToRGBA(g.img)
	g.tex.WritePixels(g.img.Pix)
	screen.DrawImage(g.tex, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.panel.Size()
	return int(w), int(h)
}

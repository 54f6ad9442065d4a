package present

import (
	"errors"
	"image/color"
	"testing"

	"github.com/taigrr/fixtrace/pkg/render"
)

func TestRGB565Packing(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 255, 255, 255, 0xFFFF},
		{"red", 255, 0, 0, 0xF800},
		{"green", 0, 255, 0, 0x07E0},
		{"blue", 0, 0, 255, 0x001F},
		{"yellow shade", 163, 163, 0, 0xA500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rgb565From888(tc.r, tc.g, tc.b); got != tc.want {
				t.Errorf("rgb565From888(%d, %d, %d) = %#04x, want %#04x", tc.r, tc.g, tc.b, got, tc.want)
			}
		})
	}

	if r, g, b := rgb888From565(0xFFFF); r != 255 || g != 255 || b != 255 {
		t.Errorf("rgb888From565(white) = (%d, %d, %d)", r, g, b)
	}
}

func TestRGB565Panel(t *testing.T) {
	var flushed []byte
	p := NewRGB565(4, 3, func(buf []byte) error {
		flushed = buf
		return nil
	})

	p.SetPixel(1, 2, color.RGBA{R: 255, A: 255})
	p.SetPixel(-1, 0, color.RGBA{G: 255, A: 255})
	p.SetPixel(4, 0, color.RGBA{G: 255, A: 255})

	if got := p.Pixel(1, 2); got != 0xF800 {
		t.Errorf("Pixel(1, 2) = %#04x", got)
	}
	// Little-endian storage.
	off := (2*4 + 1) * 2
	if p.Bytes()[off] != 0x00 || p.Bytes()[off+1] != 0xF8 {
		t.Errorf("bytes = %#x %#x", p.Bytes()[off], p.Bytes()[off+1])
	}

	if err := p.FillRectangle(2, -1, 10, 2, color.RGBA{B: 255, A: 255}); err != nil {
		t.Fatal(err)
	}
	if p.Pixel(2, 0) != 0x001F || p.Pixel(3, 0) != 0x001F || p.Pixel(2, 1) != 0 {
		t.Errorf("FillRectangle clipped wrong: %#04x %#04x %#04x", p.Pixel(2, 0), p.Pixel(3, 0), p.Pixel(2, 1))
	}

	if err := p.Display(); err != nil {
		t.Fatal(err)
	}
	if len(flushed) != 4*3*2 || p.Frames() != 1 {
		t.Errorf("flushed %d bytes after %d frames", len(flushed), p.Frames())
	}

	img := p.ToRGBA(nil)
	if c := img.RGBAAt(1, 2); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("ToRGBA(1, 2) = %v", c)
	}
}

func TestPresentCentersFrame(t *testing.T) {
	f, _ := render.NewFrame(2, 2)
	f.Clear(255, 255, 255)

	p := NewRGB565(6, 4, nil)
	if err := Present(p, f); err != nil {
		t.Fatal(err)
	}

	for y := range 4 {
		for x := range 6 {
			inside := x >= 2 && x < 4 && y >= 1 && y < 3
			if got := p.Pixel(x, y) == 0xFFFF; got != inside {
				t.Errorf("pixel (%d, %d) lit = %v, want %v", x, y, got, inside)
			}
		}
	}
	if p.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", p.Frames())
	}
}

func TestBlitClips(t *testing.T) {
	f, _ := render.NewFrame(4, 4)
	f.Clear(255, 0, 0)

	p := NewRGB565(3, 3, nil)
	Blit(p, f, -2, 1)

	if p.Pixel(0, 1) != 0xF800 || p.Pixel(1, 2) != 0xF800 {
		t.Error("visible part of the frame missing")
	}
	if p.Pixel(2, 1) != 0 || p.Pixel(0, 0) != 0 {
		t.Error("frame drawn outside its clipped area")
	}
}

func TestPresentFlushError(t *testing.T) {
	boom := errors.New("spi busy")
	p := NewRGB565(2, 2, func([]byte) error { return boom })
	f, _ := render.NewFrame(2, 2)
	if err := Present(p, f); !errors.Is(err, boom) {
		t.Errorf("Present() error = %v, want %v", err, boom)
	}
}

func TestDrawHUD(t *testing.T) {
	p := NewRGB565(80, 24, nil)
	DrawHUD(p, "12 fps", "x 4.00")

	fg := rgb565From888(HUDForeground.R, HUDForeground.G, HUDForeground.B)
	bg := rgb565From888(HUDBackground.R, HUDBackground.G, HUDBackground.B)

	var text, backdrop int
	for y := range 24 {
		for x := range 80 {
			switch p.Pixel(x, y) {
			case fg:
				text++
			case bg:
				backdrop++
			}
		}
	}
	if text == 0 {
		t.Error("no text pixels drawn")
	}
	if backdrop == 0 {
		t.Error("no backdrop drawn")
	}
	// Nothing below the second line.
	for x := range 80 {
		if p.Pixel(x, 23) != 0 {
			t.Fatalf("pixel (%d, 23) drawn below the HUD", x)
		}
	}
}

func TestPresentWithHUD(t *testing.T) {
	f, _ := render.NewFrame(40, 20)
	plain := NewRGB565(40, 20, nil)
	withHUD := NewRGB565(40, 20, nil)

	if err := Present(plain, f); err != nil {
		t.Fatal(err)
	}
	if err := Present(withHUD, f, "hi"); err != nil {
		t.Fatal(err)
	}
	if string(plain.Bytes()) == string(withHUD.Bytes()) {
		t.Error("HUD text not drawn over the frame")
	}
}

func TestTickRate(t *testing.T) {
	tests := []struct {
		fps, want int
	}{
		{0, DefaultTPS},
		{-5, DefaultTPS},
		{12, 12},
		{60, 60},
	}
	for _, tc := range tests {
		if got := TickRate(tc.fps); got != tc.want {
			t.Errorf("TickRate(%d) = %d, want %d", tc.fps, got, tc.want)
		}
	}
}

package present

import (
	"image"
	"image/color"
)

// RGB565 is an in-memory panel with 16-bit little-endian pixels, the layout
// of common SPI display controllers. It implements drivers.Displayer.
type RGB565 struct {
	width, height int
	buf           []byte
	flush         func(buf []byte) error
	frames        int
}

// NewRGB565 creates a black panel. flush, if not nil, receives the pixel
// buffer on every Display call.
func NewRGB565(width, height int, flush func(buf []byte) error) *RGB565 {
	return &RGB565{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*2),
		flush:  flush,
	}
}

// Size returns the panel size in pixels.
func (p *RGB565) Size() (x, y int16) {
	return int16(p.width), int16(p.height)
}

// SetPixel stores c at (x, y). Out of bounds writes are ignored.
func (p *RGB565) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= p.width || iy < 0 || iy >= p.height {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	off := (iy*p.width + ix) * 2
	p.buf[off] = byte(pixel)
	p.buf[off+1] = byte(pixel >> 8)
}

// FillRectangle fills a clipped rectangle with c.
func (p *RGB565) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, p.width)
	y0 := clampInt(int(y), 0, p.height)
	x1 := clampInt(int(x)+int(width), 0, p.width)
	y1 := clampInt(int(y)+int(height), 0, p.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	for py := y0; py < y1; py++ {
		row := py * p.width * 2
		for px := x0; px < x1; px++ {
			p.buf[row+px*2] = lo
			p.buf[row+px*2+1] = hi
		}
	}
	return nil
}

// Display hands the buffer to the flush function.
func (p *RGB565) Display() error {
	p.frames++
	if p.flush == nil {
		return nil
	}
	return p.flush(p.buf)
}

// Frames returns the number of Display calls.
func (p *RGB565) Frames() int {
	return p.frames
}

// Pixel returns the raw 16-bit value at (x, y).
func (p *RGB565) Pixel(x, y int) uint16 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	off := (y*p.width + x) * 2
	return uint16(p.buf[off]) | uint16(p.buf[off+1])<<8
}

// Bytes returns the pixel buffer. It is reused across frames.
func (p *RGB565) Bytes() []byte {
	return p.buf
}

// ToRGBA expands the panel into dst, allocating it when nil or mis-sized.
func (p *RGB565) ToRGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != p.width || dst.Bounds().Dy() != p.height {
		dst = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	}
	for i, j := 0, 0; i+1 < len(p.buf); i, j = i+2, j+4 {
		r, g, b := rgb888From565(uint16(p.buf[i]) | uint16(p.buf[i+1])<<8)
		dst.Pix[j+0] = r
		dst.Pix[j+1] = g
		dst.Pix[j+2] = b
		dst.Pix[j+3] = 0xff
	}
	return dst
}

func rgb565From888(r, g, b uint8) uint16 {
	return (uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F)
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8(rr * 255 / 31), uint8(gg * 255 / 63), uint8(bb * 255 / 31)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package render

import "github.com/taigrr/fixtrace/pkg/fixed"

// MaxGray is 255 in 9.7 fixed point.
const MaxGray = 255 << 7

// Quantize maps a 4.12 channel in [0, One16] to a byte. The channel is
// dropped to 4.7, scaled by MaxGray and truncated back to an integer.
// Inputs outside [0, One16] are clamped first.
func Quantize(c fixed.Fixed16) uint8 {
	c = c.Clamp(0, fixed.One16)
	return uint8(fixed.MulShift(int16(c>>5), MaxGray, 7) >> 7)
}

// QuantizeRGB quantizes every channel of c.
func QuantizeRGB(c fixed.Vec16) (r, g, b uint8) {
	return Quantize(c.X), Quantize(c.Y), Quantize(c.Z)
}

package render

import "github.com/taigrr/fixtrace/pkg/fixed"

// SkyTop is the color at the top of the sky gradient. The bottom is white.
var SkyTop = fixed.V16F(0.5, 0.7, 1.0)

// Sky returns the background color for a ray direction: a vertical blend
// from white at dir.y = -1 to SkyTop at dir.y = +1.
func Sky(dir fixed.Vec32) fixed.Vec16 {
	unit := dir.Normalize()
	a := (unit.Y + fixed.One16).Mul(fixed.Half16).To16()
	white := fixed.One16 - a
	return fixed.V16(
		white+a.Mul(SkyTop.X).To16(),
		white+a.Mul(SkyTop.Y).To16(),
		white+a.Mul(SkyTop.Z).To16(),
	).Clamp(0, fixed.One16)
}

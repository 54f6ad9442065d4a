// Package light implements the point light and its Phong-style shading.
package light

import "github.com/taigrr/fixtrace/pkg/fixed"

// SpecularExponent is the shininess used for the specular highlight.
const SpecularExponent = 16

// Light is a point light with a color.
type Light struct {
	Position fixed.Vec32
	Color    fixed.Vec16
}

// White is a full-intensity white light color.
var White = fixed.V16(fixed.One16, fixed.One16, fixed.One16)

// Shade returns the diffuse plus specular color of a surface point seen along
// dir. There is no ambient term. Each channel of the result is in [0, One16].
func Shade(l Light, dir, hitPoint fixed.Vec32, n, base fixed.Vec16) fixed.Vec16 {
	lightDir := l.Position.Sub(hitPoint).Normalize()

	diff := lightDir.Dot(n).Max(0)
	diffuse := base.Scale(diff.To16())

	viewDir := dir.Normalize()
	reflectDir := lightDir.Negate().Reflect(n).Normalize()

	var specular fixed.Vec16
	if dotspec := viewDir.Dot(reflectDir); dotspec > 0 {
		spec := dotspec.Pow(SpecularExponent)
		specular = l.Color.Scale(spec.To16())
	}

	return diffuse.Add(specular).Clamp(0, fixed.One16)
}

// Package geom holds the ray primitives and their analytic intersections.
package geom

import "github.com/taigrr/fixtrace/pkg/fixed"

// MaxCoord is the largest world-space coordinate magnitude, in real units,
// that scenes may use. Sphere intersection stays exact for any ray origin and
// sphere within this range and any 4.12 ray direction.
const MaxCoord = 1 << 12

// Epsilon is the smallest plane/ray cosine treated as facing the ray (one LSB).
const Epsilon fixed.Fixed32 = 1

// Ray is a half-line from Origin along Dir. Dir need not be unit length.
type Ray struct {
	Origin fixed.Vec32
	Dir    fixed.Vec32
}

// NewRay creates a ray from the origin with a 4.12 direction.
func NewRay(origin fixed.Vec32, dir fixed.Vec16) Ray {
	return Ray{Origin: origin, Dir: dir.To32()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t fixed.Fixed32) fixed.Vec32 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Sphere is a solid sphere with a flat color.
// Reflectivity weights the bounced color when compositing is enabled.
type Sphere struct {
	Center       fixed.Vec32
	Color        fixed.Vec16
	Radius       fixed.Fixed32
	Reflectivity fixed.Fixed16
}

// Intersect solves the ray/sphere quadratic and returns the smaller root.
// A tangent ray (zero discriminant) yields its single root.
//
// The quadratic terms are kept in 52.12, so spheres anywhere within
// MaxCoord of the ray origin are solved without wrapping. Roots that do not
// fit 20.12 are reported as misses.
func (s Sphere) Intersect(r Ray) (fixed.Fixed32, bool) {
	oc := s.Center.Sub(r.Origin)
	rr := s.Radius.To64()
	a := r.Dir.Dot64(r.Dir)
	b := r.Dir.Dot64(oc).Mul(-fixed.Two32.To64())
	c := oc.Dot64(oc) - rr.Mul(rr)
	disc := b.Mul(b) + (-fixed.Four32.To64()).Mul(a.Mul(c))
	if disc < 0 {
		return 0, false
	}
	den := fixed.Two32.To64().Mul(a)
	if den == 0 {
		return 0, false
	}
	root := -b
	if disc > 0 {
		root -= disc.Sqrt()
	}
	return root.Div(den).To32()
}

// Surface returns the hit point and unit normal for a hit at t.
// The point is expressed relative to the sphere center, so the normal is
// the normalized point itself.
func (s Sphere) Surface(r Ray, t fixed.Fixed32) (fixed.Vec32, fixed.Vec16) {
	p := r.Dir.Scale(t).Sub(s.Center)
	return p, p.Normalize()
}

// Plane is an infinite plane through Point. Normal is assumed unit length.
type Plane struct {
	Point  fixed.Vec32
	Normal fixed.Vec16
}

// Intersect returns the ray parameter of the plane hit. Rays whose direction
// does not exceed Epsilon along the normal miss. The returned t may be
// negative; callers that need a forward hit check its sign.
func (p Plane) Intersect(r Ray) (fixed.Fixed32, bool) {
	n := p.Normal.To32()
	denom := n.Dot(r.Dir)
	if denom <= Epsilon {
		return 0, false
	}
	return p.Point.Sub(r.Origin).Dot(n).Div(denom), true
}

// FirstHit returns the index and parameter of the first sphere, in slice
// order, that the ray hits. It is not necessarily the closest one.
func FirstHit(spheres []Sphere, r Ray) (int, fixed.Fixed32, bool) {
	for i, s := range spheres {
		if t, ok := s.Intersect(r); ok {
			return i, t, true
		}
	}
	return -1, 0, false
}

// NearestHit returns the sphere with the smallest positive hit parameter.
// Ties keep the earlier sphere.
func NearestHit(spheres []Sphere, r Ray) (int, fixed.Fixed32, bool) {
	best, bestT := -1, fixed.Fixed32(0)
	for i, s := range spheres {
		t, ok := s.Intersect(r)
		if !ok || t <= 0 {
			continue
		}
		if best < 0 || t < bestT {
			best, bestT = i, t
		}
	}
	return best, bestT, best >= 0
}

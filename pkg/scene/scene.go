// Package scene defines the fixed-size world the renderer traces: an ordered
// list of spheres, one floor plane, one point light and an ambient color.
package scene

import (
	"errors"
	"fmt"

	"github.com/taigrr/fixtrace/pkg/fixed"
	"github.com/taigrr/fixtrace/pkg/geom"
	"github.com/taigrr/fixtrace/pkg/light"
)

// MaxSpheres bounds the number of spheres in a scene.
const MaxSpheres = 16

var (
	// ErrNoSpheres is returned when a scene has nothing to trace.
	ErrNoSpheres = errors.New("scene has no spheres")
	// ErrTooManySpheres is returned when a scene exceeds MaxSpheres.
	ErrTooManySpheres = fmt.Errorf("scene has more than %d spheres", MaxSpheres)
)

// Scene is treated as immutable while a frame is rendered. Sphere order is
// the order in which spheres are tested for hits.
type Scene struct {
	Spheres []geom.Sphere
	Floor   geom.Plane
	Light   light.Light
	Ambient fixed.Vec16
}

// DefaultFloor is the floor plane used when a scene does not define one.
// Its normal faces down so rays travelling downward meet it from the front.
var DefaultFloor = geom.Plane{
	Point:  fixed.V32F(0, -10, 0),
	Normal: fixed.V16(0, -fixed.One16, 0),
}

// DefaultLight is the light used when a scene does not define one.
var DefaultLight = light.Light{
	Position: fixed.V32F(4, 4, 2),
	Color:    light.White,
}

// Default returns the built-in scene: a yellow reflective sphere in front of
// the camera with two smaller companions.
func Default() *Scene {
	return &Scene{
		Spheres: []geom.Sphere{
			{
				Center:       fixed.V32F(0, 0, -1),
				Radius:       fixed.Half32,
				Color:        fixed.V16F(1, 1, 0),
				Reflectivity: fixed.Half16,
			},
			{
				Center:       fixed.V32F(-1.25, -0.25, -2.5),
				Radius:       fixed.FromFloat32(0.5),
				Color:        fixed.V16F(1, 0.2, 0.2),
				Reflectivity: fixed.FromFloat16(0.25),
			},
			{
				Center: fixed.V32F(1.25, 0.25, -3),
				Radius: fixed.FromFloat32(0.75),
				Color:  fixed.V16F(0.2, 0.4, 1),
			},
		},
		Floor: DefaultFloor,
		Light: DefaultLight,
	}
}

// WithLight returns a copy of s with the light moved to pos. The sphere slice
// is shared, not copied.
func (s *Scene) WithLight(pos fixed.Vec32) *Scene {
	c := *s
	c.Light.Position = pos
	return &c
}

// Validate checks the scene's static limits and value ranges.
func (s *Scene) Validate() error {
	switch {
	case len(s.Spheres) == 0:
		return ErrNoSpheres
	case len(s.Spheres) > MaxSpheres:
		return ErrTooManySpheres
	}
	for i, sp := range s.Spheres {
		if sp.Radius <= 0 || sp.Radius >= maxCoord {
			return fmt.Errorf("sphere %d: radius %v out of range", i, sp.Radius)
		}
		if !inRange(sp.Center) {
			return fmt.Errorf("sphere %d: center %v out of range", i, sp.Center)
		}
		if !unitColor(sp.Color) {
			return fmt.Errorf("sphere %d: color %v out of range", i, sp.Color)
		}
		if sp.Reflectivity < 0 || sp.Reflectivity > fixed.One16 {
			return fmt.Errorf("sphere %d: reflectivity %v out of range", i, sp.Reflectivity)
		}
	}
	if !inRange(s.Light.Position) {
		return fmt.Errorf("light position %v out of range", s.Light.Position)
	}
	if !inRange(s.Floor.Point) {
		return fmt.Errorf("floor point %v out of range", s.Floor.Point)
	}
	if s.Floor.Normal.IsZero() {
		return errors.New("floor normal is zero")
	}
	if !unitColor(s.Light.Color) {
		return fmt.Errorf("light color %v out of range", s.Light.Color)
	}
	if !unitColor(s.Ambient) {
		return fmt.Errorf("ambient color %v out of range", s.Ambient)
	}
	return nil
}

// maxCoord is geom.MaxCoord in 20.12.
const maxCoord = fixed.Fixed32(geom.MaxCoord << fixed.Shift)

func inRange(v fixed.Vec32) bool {
	for _, c := range []fixed.Fixed32{v.X, v.Y, v.Z} {
		if c <= -maxCoord || c >= maxCoord {
			return false
		}
	}
	return true
}

func unitColor(c fixed.Vec16) bool {
	return c == c.Clamp(0, fixed.One16)
}

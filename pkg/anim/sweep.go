// Package anim moves the light between frames.
package anim

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/fixtrace/pkg/fixed"
	"github.com/taigrr/fixtrace/pkg/scene"
)

// Sweep parameters in 4.12. Each pass starts at SweepStart and steps down by
// SweepStep while the coordinate stays above -SweepStart.
const (
	SweepStart = fixed.Four16
	SweepStep  = fixed.Fixed16(1 << (fixed.Shift - 2))
	SweepZ     = fixed.Two32
)

// Sweep returns the light positions of the default animation, in three
// passes at height z = 2: y falls with x = 4, x falls with y = 4, then
// both fall together.
func Sweep() []fixed.Vec32 {
	var pts []fixed.Vec32
	for y := SweepStart; y > -SweepStart; y -= SweepStep {
		pts = append(pts, fixed.V32(SweepStart.To32(), y.To32(), SweepZ))
	}
	for x := SweepStart; x > -SweepStart; x -= SweepStep {
		pts = append(pts, fixed.V32(x.To32(), SweepStart.To32(), SweepZ))
	}
	for v := SweepStart; v > -SweepStart; v -= SweepStep {
		pts = append(pts, fixed.V32(v.To32(), v.To32(), SweepZ))
	}
	return pts
}

// Follower eases a position toward a moving target with critically damped
// springs, one per axis.
type Follower struct {
	pos, vel [3]float64
	spring   harmonica.Spring
}

// Follower spring settings.
const (
	FollowFrequency = 6.0
	FollowDamping   = 1.0
)

// NewFollower creates a follower resting at start, stepped fps times per
// second.
func NewFollower(fps int, start fixed.Vec32) *Follower {
	return &Follower{
		pos:    [3]float64{start.X.Float(), start.Y.Float(), start.Z.Float()},
		spring: harmonica.NewSpring(harmonica.FPS(fps), FollowFrequency, FollowDamping),
	}
}

// Update advances the springs one frame toward target and returns the new
// position.
func (f *Follower) Update(target fixed.Vec32) fixed.Vec32 {
	t := [3]float64{target.X.Float(), target.Y.Float(), target.Z.Float()}
	for i := range f.pos {
		f.pos[i], f.vel[i] = f.spring.Update(f.pos[i], f.vel[i], t[i])
	}
	return f.Position()
}

// Position returns the current position.
func (f *Follower) Position() fixed.Vec32 {
	return fixed.V32F(f.pos[0], f.pos[1], f.pos[2])
}

// Driver steps the light through a list of waypoints, one per frame.
type Driver struct {
	waypoints []fixed.Vec32
	loop      bool
	follower  *Follower
	frame     int
}

// Option configures a Driver.
type Option func(*Driver)

// Loop restarts the waypoints after the last one instead of stopping.
func Loop() Option {
	return func(d *Driver) { d.loop = true }
}

// Smooth eases the light between waypoints with springs stepped at fps.
func Smooth(fps int) Option {
	return func(d *Driver) {
		if len(d.waypoints) > 0 {
			d.follower = NewFollower(fps, d.waypoints[0])
		}
	}
}

// NewDriver creates a driver over waypoints. Options are applied in order.
func NewDriver(waypoints []fixed.Vec32, opts ...Option) *Driver {
	d := &Driver{waypoints: waypoints}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Len returns the number of frames in one pass.
func (d *Driver) Len() int {
	return len(d.waypoints)
}

// Frame returns the number of frames produced so far.
func (d *Driver) Frame() int {
	return d.frame
}

// Next returns sc with the light at the next position. It returns false
// once a non-looping driver has used every waypoint.
func (d *Driver) Next(sc *scene.Scene) (*scene.Scene, bool) {
	if len(d.waypoints) == 0 || (!d.loop && d.frame >= len(d.waypoints)) {
		return sc, false
	}
	pos := d.waypoints[d.frame%len(d.waypoints)]
	if d.follower != nil {
		pos = d.follower.Update(pos)
	}
	d.frame++
	return sc.WithLight(pos), true
}

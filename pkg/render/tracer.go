package render

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/fixtrace/pkg/fixed"
	"github.com/taigrr/fixtrace/pkg/geom"
	"github.com/taigrr/fixtrace/pkg/light"
	"github.com/taigrr/fixtrace/pkg/log"
	"github.com/taigrr/fixtrace/pkg/scene"
)

// DefaultMaxDepth traces primary rays only.
const DefaultMaxDepth = 1

var logger = log.New("render")

// Stats counts what happened while tracing.
type Stats struct {
	Rays       int // primary and reflected rays traced
	SphereHits int
	PlaneHits  int // forward floor hits among sphere misses
	Misses     int
	Depth      int // deepest recursion level reached
	RenderTime time.Duration
}

// Add accumulates o into s. RenderTime is summed.
func (s *Stats) Add(o Stats) {
	s.Rays += o.Rays
	s.SphereHits += o.SphereHits
	s.PlaneHits += o.PlaneHits
	s.Misses += o.Misses
	s.Depth = max(s.Depth, o.Depth)
	s.RenderTime += o.RenderTime
}

// Tracer renders scenes. The zero value is not ready; use NewTracer.
//
// With the defaults every pixel shows the first sphere, in scene order, that
// its ray hits, shaded by the light. Reflected rays are traced while the
// depth is below MaxDepth, but their color only contributes when Composite
// is set.
type Tracer struct {
	// MaxDepth bounds recursion; the primary ray is depth 1.
	MaxDepth int
	// Workers is the number of rows rendered concurrently. 1 renders
	// sequentially; <= 0 uses GOMAXPROCS.
	Workers int
	// Sky draws a gradient instead of the ambient color behind the spheres.
	Sky bool
	// NearestHit selects the closest sphere in front of the ray instead of
	// the first one in scene order.
	NearestHit bool
	// Composite blends the reflected color into the surface color by the
	// sphere's reflectivity.
	Composite bool
}

// NewTracer returns a tracer with default settings.
func NewTracer() *Tracer {
	return &Tracer{
		MaxDepth: DefaultMaxDepth,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// Trace returns the color seen along r and whether a sphere was hit.
func (t *Tracer) Trace(r geom.Ray, sc *scene.Scene) (fixed.Vec16, bool) {
	var st Stats
	return t.trace(r, sc, 1, &st)
}

// TraceStats is Trace that also accumulates counters into st.
func (t *Tracer) TraceStats(r geom.Ray, sc *scene.Scene, st *Stats) (fixed.Vec16, bool) {
	return t.trace(r, sc, 1, st)
}

func (t *Tracer) trace(r geom.Ray, sc *scene.Scene, depth int, st *Stats) (fixed.Vec16, bool) {
	st.Rays++
	st.Depth = max(st.Depth, depth)

	i, tt, ok := t.hit(sc.Spheres, r)
	if !ok {
		st.Misses++
		if tp, ok := sc.Floor.Intersect(r); ok && tp > 0 {
			st.PlaneHits++
		}
		return t.background(r, sc), false
	}
	st.SphereHits++

	s := sc.Spheres[i]
	p, n := s.Surface(r, tt)

	var bounce fixed.Vec16
	traced := false
	if depth < t.MaxDepth {
		reflected := geom.Ray{Origin: p, Dir: r.Dir.Reflect(n)}
		bounce, _ = t.trace(reflected, sc, depth+1, st)
		traced = true
	}

	c := light.Shade(sc.Light, r.Dir, p, n, s.Color)
	if t.Composite && traced {
		c = c.Scale(fixed.One16-s.Reflectivity).
			Add(bounce.Scale(s.Reflectivity)).
			Clamp(0, fixed.One16)
	}
	return c, true
}

func (t *Tracer) hit(spheres []geom.Sphere, r geom.Ray) (int, fixed.Fixed32, bool) {
	if t.NearestHit {
		return geom.NearestHit(spheres, r)
	}
	return geom.FirstHit(spheres, r)
}

func (t *Tracer) background(r geom.Ray, sc *scene.Scene) fixed.Vec16 {
	if t.Sky {
		return Sky(r.Dir)
	}
	return sc.Ambient
}

// Render traces every pixel of f. The frame must match the camera size.
// Rows are rendered concurrently; the result does not depend on Workers.
func (t *Tracer) Render(ctx context.Context, cam *Camera, sc *scene.Scene, f *Frame) (Stats, error) {
	if f.Width != cam.Width || f.Height != cam.Height || len(f.Pix) != f.Width*f.Height*3 {
		return Stats{}, fmt.Errorf("%w: frame %dx%d, camera %dx%d",
			ErrFrameSize, f.Width, f.Height, cam.Width, cam.Height)
	}

	start := time.Now()
	rows := make([]Stats, f.Height)

	workers := t.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers == 1 {
		for y := range f.Height {
			if err := ctx.Err(); err != nil {
				return Stats{}, err
			}
			t.renderRow(cam, sc, f, y, &rows[y])
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for y := range f.Height {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				t.renderRow(cam, sc, f, y, &rows[y])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Stats{}, err
		}
	}

	var st Stats
	for _, r := range rows {
		st.Add(r)
	}
	st.RenderTime = time.Since(start)

	logger.Debugf("frame %dx%d: %d rays, %d sphere hits, %d plane hits, %d misses, depth %d in %s",
		f.Width, f.Height, st.Rays, st.SphereHits, st.PlaneHits, st.Misses, st.Depth, st.RenderTime)
	return st, nil
}

func (t *Tracer) renderRow(cam *Camera, sc *scene.Scene, f *Frame, y int, st *Stats) {
	for x := range f.Width {
		c, _ := t.trace(cam.Ray(x, y), sc, 1, st)
		r, g, b := QuantizeRGB(c)
		i := (y*f.Width + x) * 3
		f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
	}
}

package easel

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fourier/sketch"
)

// Surface is an abstract 2D render target, implemented by the rendering
// collaborator. The easel never touches pixels, colors or layout; it only
// describes its current state as lines, circles and polylines.
type Surface interface {
	Line(from, to arithm.Pair)
	Circle(center arithm.Pair, radius float64)
	Polyline(points []arithm.Pair)
}

// Render draws the easel's current state onto a surface, once per frame:
// replayed and completed traces, the epicycle chain and partial trace of
// every animating path, the polyline of a recording in progress, and, if
// enabled, the raw-stroke overlay. Render is a pure read and never mutates
// easel or path state.
func (e *Easel) Render(s Surface) {
	if e.showOriginal {
		for _, p := range e.completed {
			polyline(s, p.RawPolyline())
		}
		for _, p := range e.active {
			polyline(s, p.RawPolyline())
		}
	}
	for _, p := range e.completed {
		polyline(s, p.Trace())
	}
	for _, p := range e.active {
		switch p.State() {
		case sketch.Animating:
			for _, limb := range p.Chain() {
				s.Circle(limb.Center, limb.Radius)
				s.Line(limb.Center, limb.Tip)
			}
			polyline(s, p.Trace())
		case sketch.Complete:
			polyline(s, p.Trace())
		}
	}
	if e.current != nil {
		polyline(s, e.current.RawPolyline())
	}
}

// A polyline needs at least two points to be visible.
func polyline(s Surface, points []arithm.Pair) {
	if len(points) < 2 {
		return
	}
	s.Polyline(points)
}

package sketch

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fourier"
)

// Path is one freehand-traced curve: the recorded timed points, the Fourier
// coefficients derived from them, and the animated redrawing state. A path
// starts in Recording, is transformed exactly once by Finish, and is then
// stepped frame by frame until Complete. The orchestrator may Rewind it into
// a new animation cycle re-using the stored coefficients.
type Path struct {
	center      arithm.Pair
	points      []TimedPoint
	coeffs      []fourier.Coefficient
	trace       []arithm.Pair
	t           float64 // animation time in [0,1)
	state       State
	transformed bool
}

// NewPath starts an empty recording on a canvas with the given center.
func NewPath(center arithm.Pair) *Path {
	return &Path{center: center, state: Recording}
}

// AddPoint appends one raw input sample to the recording.
func (p *Path) AddPoint(pos arithm.Pair, at float64) error {
	if p.state != Recording {
		return fmt.Errorf("%w: state is %s", ErrNotRecording, p.state)
	}
	p.points = append(p.points, TimedPoint{Pos: pos, At: at})
	return nil
}

// N returns the number of recorded raw points.
func (p *Path) N() int {
	return len(p.points)
}

// Z returns the recorded position at index (i mod N).
func (p *Path) Z(i int) arithm.Pair {
	if i < 0 || i >= p.N() {
		i = ((i % p.N()) + p.N()) % p.N()
	}
	return p.points[i].Pos
}

// Finish ends the recording and computes the path's coefficients as a
// one-time transform: positions are centered, transformed, filtered with
// the default threshold and ordered by descending magnitude. Returns
// ErrTooFewPoints for recordings of fewer than 2 points, in which case the
// path stays untransformed and the caller should discard it.
func (p *Path) Finish() error {
	if p.state != Recording {
		return fmt.Errorf("%w: state is %s", ErrNotRecording, p.state)
	}
	if len(p.points) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(p.points))
	}
	samples := fourier.Centered(p.RawPolyline(), p.center)
	p.coeffs = fourier.Transform(samples).Filter(fourier.DefaultThreshold)
	p.transformed = true
	p.t = 0
	p.trace = nil
	p.state = Animating
	tracer().Debugf("path of %d points keeps %d epicycles", len(p.points), len(p.coeffs))
	return nil
}

// Step advances an animating path by one frame: the composite point at the
// current time is appended to the trace, then time advances by
// (1/N)·speed, with N the raw point count. Denser strokes animate
// proportionally longer. When time accumulates to 1 (up to arithm.Epsilon,
// so that N accumulated increments of 1/N count as a full cycle) the path
// completes and time resets; the last trace point stays the last computed
// one, no fresh evaluation at t=1 happens. No-op outside Animating.
func (p *Path) Step(speed float64) {
	if p.state != Animating {
		return
	}
	p.trace = append(p.trace, fourier.Tip(p.coeffs, p.center, p.t))
	p.t += 1.0 / float64(len(p.points)) * speed
	if p.t >= 1 || arithm.Is1(p.t) {
		p.t = 0
		p.state = Complete
	}
}

// SkipToEnd force-completes an animating path, keeping the trace as drawn
// so far. No-op in any other state.
func (p *Path) SkipToEnd() {
	if p.state == Animating {
		p.state = Complete
	}
}

// Rewind re-enters a transformed path into a fresh animation cycle: time
// back to 0, trace cleared, stored coefficients re-used.
func (p *Path) Rewind() error {
	if !p.transformed {
		return ErrNotTransformed
	}
	p.t = 0
	p.trace = nil
	p.state = Animating
	return nil
}

// State returns the path's lifecycle tag.
func (p *Path) State() State {
	return p.state
}

// Time returns the current animation time in [0,1).
func (p *Path) Time() float64 {
	return p.t
}

// Trace returns the animated trace drawn so far. Callers must not mutate it.
func (p *Path) Trace() []arithm.Pair {
	return p.trace
}

// Coefficients returns the filtered, magnitude-ordered coefficient list.
// Empty for degenerate recordings (e.g. a single repeated point); the
// reconstruction then stays at the canvas center.
func (p *Path) Coefficients() []fourier.Coefficient {
	return p.coeffs
}

// Chain returns the epicycle chain at the current animation time, for
// rendering circles and spokes.
func (p *Path) Chain() []fourier.Limb {
	return fourier.Chain(p.coeffs, p.center, p.t)
}

// RawPolyline returns the recorded positions in insertion order, e.g. for
// an overlay of the original stroke.
func (p *Path) RawPolyline() []arithm.Pair {
	pts := make([]arithm.Pair, len(p.points))
	for i, tp := range p.points {
		pts[i] = tp.Pos
	}
	return pts
}

// Duration returns the recorded time span in seconds.
func (p *Path) Duration() float64 {
	if len(p.points) < 2 {
		return 0
	}
	return p.points[len(p.points)-1].At - p.points[0].At
}

// Bounds returns the bounding box of the recorded stroke as (min, max)
// corner points. The origin twice for an empty recording.
func (p *Path) Bounds() (min, max arithm.Pair) {
	if len(p.points) == 0 {
		return arithm.Origin, arithm.Origin
	}
	contour := make(polyclip.Contour, 0, len(p.points))
	for _, tp := range p.points {
		contour.Add(polyclip.Point{X: tp.Pos.X(), Y: tp.Pos.Y()})
	}
	box := contour.BoundingBox()
	return arithm.P(box.Min.X, box.Min.Y), arithm.P(box.Max.X, box.Max.Y)
}

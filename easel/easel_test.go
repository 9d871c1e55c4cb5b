package easel

import (
	"math"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fourier/sketch"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var center = arithm.P(400, 300)

// Record one circular stroke of n points through the command interface.
func sketchStroke(e *Easel, n int, radius float64) {
	e.Do(Command{Op: BeginRecording})
	for k := 0; k < n; k++ {
		phi := 2 * math.Pi * float64(k) / float64(n)
		pos := center + arithm.P(radius*math.Cos(phi), radius*math.Sin(phi))
		e.Record(pos, float64(k)*0.01)
	}
	e.Do(Command{Op: EndRecording})
}

func countAnimating(paths []*sketch.Path) int {
	n := 0
	for _, p := range paths {
		if p.State() == sketch.Animating {
			n++
		}
	}
	return n
}

type probe struct {
	lines     int
	circles   int
	polylines [][]arithm.Pair
}

func (pr *probe) Line(from, to arithm.Pair) { pr.lines++ }

func (pr *probe) Circle(c arithm.Pair, r float64) { pr.circles++ }

func (pr *probe) Polyline(pts []arithm.Pair) { pr.polylines = append(pr.polylines, pts) }

func TestEaselCommitsRecording(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	assert.False(t, e.Recording())
	sketchStroke(e, 8, 50)
	assert.False(t, e.Recording())
	paths := e.Paths()
	assert.Len(t, paths, 1)
	assert.Equal(t, sketch.Animating, paths[0].State())
}

func TestEaselDiscardsShortRecording(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	e.Do(Command{Op: BeginRecording})
	e.Record(center, 0)
	e.Do(Command{Op: EndRecording})
	assert.Empty(t, e.Paths(), "1-point recording must vanish silently")
	assert.False(t, e.Recording())
}

func TestEaselDropsSamplesOutsideRecording(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	e.Record(center, 0) // no recording in progress
	assert.Empty(t, e.Paths())
}

func TestEaselBeginRecordingKeepsOrClears(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	sketchStroke(e, 4, 50)
	sketchStroke(e, 4, 80) // append alongside
	assert.Len(t, e.Paths(), 2)
	e.Do(Command{Op: BeginRecording, ClearExisting: true})
	assert.Empty(t, e.Paths(), "clearExisting must drop previous paths")
	assert.True(t, e.Recording())
}

func TestEaselSpeedClamp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	assert.Equal(t, DefaultSpeed, e.Speed())
	e.Do(Command{Op: AdjustSpeed, Delta: SpeedStep})
	assert.Equal(t, MaxSpeed, e.Speed(), "speed is clamped, never rejected")
	for i := 0; i < 20; i++ {
		e.Do(Command{Op: AdjustSpeed, Delta: -SpeedStep})
	}
	assert.InDelta(t, MinSpeed, e.Speed(), 1e-12)
	e.Do(Command{Op: AdjustSpeed, Delta: SpeedStep})
	assert.InDelta(t, 0.2, e.Speed(), 1e-12)
}

func TestEaselAnimationRunsToCompletion(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	sketchStroke(e, 10, 50)
	p := e.Paths()[0]
	for i := 0; i < 9; i++ {
		e.Tick()
		assert.Equal(t, sketch.Animating, p.State(), "completed early on tick %d", i+1)
	}
	e.Tick()
	assert.Equal(t, sketch.Complete, p.State(), "10 points at speed 1.0 complete on the 10th tick")
	assert.Len(t, p.Trace(), 10)
}

func TestEaselReplayAllSequential(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	sketchStroke(e, 4, 40)
	sketchStroke(e, 5, 60)
	sketchStroke(e, 6, 80)
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	paths := e.Paths()
	assert.Len(t, paths, 3)
	assert.Zero(t, countAnimating(paths))

	e.Do(Command{Op: ReplayAll})
	assert.True(t, e.Replaying())
	assert.Equal(t, sketch.Animating, paths[0].State(), "first path restarts from time 0")
	assert.Empty(t, paths[0].Trace())

	ticks := 0
	for e.Replaying() {
		assert.Equal(t, 1, countAnimating(paths), "exactly one path animates during replay")
		e.Tick()
		ticks++
		assert.LessOrEqual(t, ticks, 100, "replay never finished")
	}
	assert.Equal(t, 4+5+6, ticks)

	// The replayed set becomes the new active set, original order preserved.
	after := e.Paths()
	assert.Len(t, after, 3)
	for i := range paths {
		assert.Same(t, paths[i], after[i], "path %d out of order after replay", i)
		assert.Equal(t, sketch.Complete, paths[i].State())
		assert.NotEmpty(t, paths[i].Trace())
	}
	assert.Empty(t, e.Completed())
}

func TestEaselForceComplete(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	sketchStroke(e, 10, 50)
	e.Tick()
	p := e.Paths()[0]
	traceLen := len(p.Trace())
	e.Do(Command{Op: ForceComplete})
	assert.Equal(t, sketch.Complete, p.State())
	assert.Equal(t, traceLen, len(p.Trace()), "force-complete keeps the last computed trace")
	assert.NotEmpty(t, p.Trace())
}

func TestEaselForceCompleteDrainsReplayQueue(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	sketchStroke(e, 4, 40)
	sketchStroke(e, 5, 60)
	sketchStroke(e, 6, 80)
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	paths := e.Paths()
	e.Do(Command{Op: ReplayAll})
	for i := 0; i < 5; i++ { // interrupt mid-replay, second path animating
		e.Tick()
	}
	e.Do(Command{Op: ForceComplete})
	assert.False(t, e.Replaying())
	after := e.Paths()
	assert.Len(t, after, 3)
	for i := range paths {
		assert.Same(t, paths[i], after[i], "path %d out of order after interrupt", i)
		assert.Equal(t, sketch.Complete, paths[i].State())
	}
}

func TestEaselClear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	sketchStroke(e, 6, 50)
	e.Do(Command{Op: BeginRecording})
	e.Do(Command{Op: Clear})
	assert.Empty(t, e.Paths())
	assert.False(t, e.Recording())
	assert.False(t, e.Replaying())
}

func TestEaselRender(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	sketchStroke(e, 8, 50)
	e.Tick()
	e.Tick()
	p := e.Paths()[0]
	limbs := len(p.Chain())
	assert.Positive(t, limbs)

	s := &probe{}
	e.Render(s)
	assert.Equal(t, limbs, s.circles, "one circle per epicycle")
	assert.Equal(t, limbs, s.lines, "one spoke per epicycle")
	assert.Len(t, s.polylines, 1, "the partial trace")

	// Rendering is a pure read: repeating it changes nothing.
	state, traceLen := p.State(), len(p.Trace())
	e.Render(&probe{})
	assert.Equal(t, state, p.State())
	assert.Equal(t, traceLen, len(p.Trace()))
}

func TestEaselRenderOverlay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	sketchStroke(e, 8, 50)
	e.Tick()
	e.Tick()
	plain := &probe{}
	e.Render(plain)
	e.Do(Command{Op: ToggleOriginal})
	assert.True(t, e.ShowOriginal())
	overlay := &probe{}
	e.Render(overlay)
	assert.Equal(t, len(plain.polylines)+1, len(overlay.polylines),
		"overlay adds the raw stroke polyline")
	e.Do(Command{Op: ToggleOriginal})
	assert.False(t, e.ShowOriginal())
}

func TestEaselRenderRecordingInProgress(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := New(center)
	e.Do(Command{Op: BeginRecording})
	e.Record(center, 0)
	s := &probe{}
	e.Render(s)
	assert.Empty(t, s.polylines, "a single point is not yet a polyline")
	e.Record(center+arithm.P(10, 10), 0.01)
	e.Render(s)
	assert.Len(t, s.polylines, 1)
}

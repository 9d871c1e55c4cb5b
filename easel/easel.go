// Package easel orchestrates a collection of sketched paths: recording,
// simultaneous and sequential (replay-all) animation, speed control, and
// rendering into an abstract surface. The easel is driven by a single
// cooperative tick loop (process commands, mutate state, render) and is
// not safe for concurrent use.
package easel

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fourier/sketch"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to a tracer with key 'easel'.
func L() tracing.Trace {
	return tracing.Select("easel")
}

// Animation speed is a scalar in [MinSpeed, MaxSpeed], adjusted in steps of
// SpeedStep (one scroll-wheel notch).
const (
	DefaultSpeed = 1.0
	MinSpeed     = 0.1
	MaxSpeed     = 1.0
	SpeedStep    = 0.1
)

// Easel orchestrates a collection of sketched paths: the current recording,
// the active paths, and (during a replay-all cycle) a FIFO queue of pending
// paths plus the set already replayed. All mutation happens on the single
// tick thread (Do, Record, Tick); Render is a pure read.
type Easel struct {
	center       arithm.Pair
	active       []*sketch.Path
	completed    []*sketch.Path // collected during a replay cycle
	pending      []*sketch.Path // replay queue, FIFO
	current      *sketch.Path   // recording in progress, nil otherwise
	speed        float64
	replaying    bool
	showOriginal bool
}

// New creates an empty easel for a canvas with the given center point.
func New(center arithm.Pair) *Easel {
	return &Easel{center: center, speed: DefaultSpeed}
}

// Do consumes one discrete command.
func (e *Easel) Do(cmd Command) {
	L().Debugf("command %s", cmd.Op)
	switch cmd.Op {
	case BeginRecording:
		e.beginRecording(cmd.ClearExisting)
	case EndRecording:
		e.endRecording()
	case ReplayAll:
		e.replayAll()
	case ForceComplete:
		e.forceComplete()
	case AdjustSpeed:
		e.adjustSpeed(cmd.Delta)
	case ToggleOriginal:
		e.showOriginal = !e.showOriginal
	case Clear:
		e.clear()
	}
}

// Record streams one input sample into the current recording. Samples
// arriving outside a recording are dropped.
func (e *Easel) Record(pos arithm.Pair, at float64) {
	if e.current == nil {
		return
	}
	if err := e.current.AddPoint(pos, at); err != nil {
		L().Errorf("dropping input sample: %v", err)
	}
}

// Tick advances the animation by one frame: every animating path steps
// once, then replay bookkeeping runs. During a replay cycle exactly one
// path animates; when it completes, the next queued path starts, and when
// the queue drains, the replayed set as a whole becomes the active set
// again (computed fully, then swapped in).
func (e *Easel) Tick() {
	for _, p := range e.active {
		p.Step(e.speed)
	}
	if !e.replaying || len(e.active) == 0 {
		return
	}
	head := e.active[0]
	if head.State() != sketch.Complete {
		return
	}
	e.completed = append(e.completed, head)
	if len(e.pending) > 0 {
		next := e.pending[0]
		e.pending = e.pending[1:]
		if err := next.Rewind(); err != nil {
			L().Errorf("cannot replay path: %v", err)
		}
		e.active = []*sketch.Path{next}
		return
	}
	e.active = e.completed
	e.completed = nil
	e.replaying = false
}

func (e *Easel) beginRecording(clearExisting bool) {
	if clearExisting {
		e.clear()
	}
	e.current = sketch.NewPath(e.center)
}

func (e *Easel) endRecording() {
	if e.current == nil {
		return
	}
	path := e.current
	e.current = nil
	if err := path.Finish(); err != nil {
		// Not surfaced: recordings of fewer than 2 points vanish silently.
		L().Debugf("discarding recording: %v", err)
		return
	}
	e.active = append(e.active, path)
}

func (e *Easel) replayAll() {
	if e.replaying || len(e.active) == 0 {
		return
	}
	snapshot := append(e.active[:0:0], e.active...)
	head := snapshot[0]
	if err := head.Rewind(); err != nil {
		L().Errorf("cannot replay path: %v", err)
		return
	}
	e.active = snapshot[:1:1]
	e.pending = snapshot[1:]
	e.completed = nil
	e.replaying = true
	L().Debugf("replaying %d paths", len(snapshot))
}

func (e *Easel) forceComplete() {
	for _, p := range e.active {
		p.SkipToEnd()
	}
	if !e.replaying {
		return
	}
	for _, p := range e.pending {
		p.SkipToEnd()
	}
	// Reassemble the active set in original order: already replayed paths,
	// the interrupted head, then the drained queue.
	next := make([]*sketch.Path, 0, len(e.completed)+len(e.active)+len(e.pending))
	next = append(next, e.completed...)
	next = append(next, e.active...)
	next = append(next, e.pending...)
	e.active = next
	e.completed = nil
	e.pending = nil
	e.replaying = false
}

func (e *Easel) adjustSpeed(delta float64) {
	s := e.speed + delta
	if s < MinSpeed {
		s = MinSpeed
	}
	if s > MaxSpeed {
		s = MaxSpeed
	}
	e.speed = s
}

func (e *Easel) clear() {
	e.active, e.completed, e.pending = nil, nil, nil
	e.current = nil
	e.replaying = false
}

// Speed returns the current animation speed.
func (e *Easel) Speed() float64 {
	return e.speed
}

// Recording is a predicate: is a recording in progress?
func (e *Easel) Recording() bool {
	return e.current != nil
}

// Replaying is a predicate: is a replay-all cycle in progress?
func (e *Easel) Replaying() bool {
	return e.replaying
}

// ShowOriginal reports whether the raw-stroke overlay is enabled.
func (e *Easel) ShowOriginal() bool {
	return e.showOriginal
}

// Paths returns a snapshot of the active paths.
func (e *Easel) Paths() []*sketch.Path {
	return append(e.active[:0:0], e.active...)
}

// Completed returns a snapshot of the paths already replayed in the current
// replay cycle. Empty outside of one.
func (e *Easel) Completed() []*sketch.Path {
	return append(e.completed[:0:0], e.completed...)
}

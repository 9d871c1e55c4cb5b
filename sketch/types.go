package sketch

import (
	"errors"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sketch'
func tracer() tracing.Trace {
	return tracing.Select("sketch")
}

var (
	// ErrTooFewPoints indicates a recording with fewer than 2 points.
	ErrTooFewPoints = errors.New("path needs at least 2 recorded points")
	// ErrNotRecording indicates an input operation on a path whose recording has ended.
	ErrNotRecording = errors.New("path is not in recording state")
	// ErrNotTransformed indicates a replay request for a path that was never transformed.
	ErrNotTransformed = errors.New("path has no Fourier transform yet")
)

// State tags the lifecycle phase of a Path:
// Recording → Animating → Complete.
type State int8

const (
	// Recording: raw points are being appended, no coefficients yet.
	Recording State = iota
	// Animating: coefficients computed, the animated trace is accumulating.
	Animating
	// Complete: animation time reached 1, or the path was force-completed.
	Complete
)

func (s State) String() string {
	switch s {
	case Recording:
		return "recording"
	case Animating:
		return "animating"
	case Complete:
		return "complete"
	}
	return "invalid"
}

// TimedPoint is one raw input sample of a recording: a canvas position
// together with a monotonic timestamp in seconds. Immutable once recorded;
// insertion order is significant.
type TimedPoint struct {
	Pos arithm.Pair
	At  float64
}

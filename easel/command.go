package easel

// Op enumerates the discrete commands an input collaborator may issue.
// Commands are plain data; the easel consumes them one at a time between
// ticks, keeping event dispatch out of the engine.
type Op int8

const (
	NoOp Op = iota
	// BeginRecording starts a new freehand recording, optionally dropping
	// all existing paths first.
	BeginRecording
	// EndRecording commits the current recording: recordings of at least 2
	// points transform and start animating, shorter ones are discarded.
	EndRecording
	// ReplayAll re-animates every stored path sequentially, in original order.
	ReplayAll
	// ForceComplete immediately completes all animating paths and drains
	// the replay queue.
	ForceComplete
	// AdjustSpeed changes the global animation speed by Delta, clamped to
	// [MinSpeed, MaxSpeed].
	AdjustSpeed
	// ToggleOriginal flips the raw-stroke overlay on or off.
	ToggleOriginal
	// Clear drops every path and any active recording.
	Clear
)

func (op Op) String() string {
	switch op {
	case NoOp:
		return "no-op"
	case BeginRecording:
		return "begin-recording"
	case EndRecording:
		return "end-recording"
	case ReplayAll:
		return "replay-all"
	case ForceComplete:
		return "force-complete"
	case AdjustSpeed:
		return "adjust-speed"
	case ToggleOriginal:
		return "toggle-original"
	case Clear:
		return "clear"
	}
	return "invalid"
}

// Command is one discrete input command.
type Command struct {
	Op            Op
	ClearExisting bool    // BeginRecording: drop existing paths first
	Delta         float64 // AdjustSpeed: signed speed change
}

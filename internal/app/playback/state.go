// Package playback provides the play axis scheduler: a Stopped/Playing/Paused
// state machine that walks an item sequence on a timed schedule.
package playback

// State represents the playback state.
type State int

const (
	StateStopped State = iota // Initial state; cursor at 0
	StatePlaying              // Ticks are scheduled
	StatePaused               // No ticks scheduled; cursor kept
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

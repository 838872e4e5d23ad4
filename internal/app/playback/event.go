package playback

import "github.com/osa030/playaxis/internal/domain/item"

// EventType represents a playback event type.
type EventType int

const (
	EventStateChanged   EventType = iota // Play, pause or stop took effect
	EventItemSelected                    // A scheduled tick selected an item
	EventStepped                         // A manual step selected an item
	EventCycleCompleted                  // The terminal tick of a cycle fired
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventStateChanged:
		return "state_changed"
	case EventItemSelected:
		return "item_selected"
	case EventStepped:
		return "stepped"
	case EventCycleCompleted:
		return "cycle_completed"
	default:
		return "unknown"
	}
}

// Event represents a playback event.
type Event struct {
	Type   EventType
	State  State
	Cursor int
	Item   *item.Item // Selected item (nil for state and cycle events)
}

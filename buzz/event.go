package buzz

import "time"

// Action distinguishes the two edge transitions a button can make.
type Action uint8

const (
	Released Action = iota
	Pressed
)

func (a Action) String() string {
	if a == Pressed {
		return "pressed"
	}
	return "released"
}

// ButtonEvent is one edge transition derived from two consecutive input
// reports. Events are values; the decoder does not retain them.
type ButtonEvent struct {
	// Controller is the 0-based controller index (0-3).
	Controller int
	// Button is the 0-based button index (0-4) on that controller.
	Button int
	// Name is the human-readable button name from ButtonName.
	Name string
	// Action is Pressed or Released.
	Action Action
	// Timestamp is the instant the report carrying this transition was
	// decoded. All events from one report share the same instant; list
	// order, not Timestamp, is authoritative within a report.
	Timestamp time.Time
}

package buzz

// Wire report sizes for the Buzz HID protocol.
const (
	// InputReportSize is the fixed size of one button input report.
	InputReportSize = 5
	// LedReportSize is the fixed size of one LED output report.
	LedReportSize = 6
)

const (
	// NumControllers is the number of physical controllers multiplexed
	// onto one input report.
	NumControllers = 4
	// NumButtons is the number of buttons on each controller.
	NumButtons = 5
	// NumChannels is the number of independently controllable LEDs,
	// one per controller.
	NumChannels = 4
)

// Button indices within one controller, in wire bit order.
const (
	ButtonRed    = iota // big red buzzer button
	ButtonYellow        // first of the four small color buttons
	ButtonGreen
	ButtonOrange
	ButtonBlue
)

// ButtonName maps button indices to human-readable names. Names repeat
// across controllers; a button is identified by (controller, button).
var ButtonName = [NumButtons]string{
	ButtonRed:    "red",
	ButtonYellow: "yellow",
	ButtonGreen:  "green",
	ButtonOrange: "orange",
	ButtonBlue:   "blue",
}

// locus is the fixed position of one button's pressed bit within an
// input report.
type locus struct {
	byteOffset uint8
	bitOffset  uint8
}

// buttonLocus maps (controller, button) to its bit position. Bytes 0-1 of
// the report are reserved; controller 0 sits in byte 2 bits 0-4,
// controller 1 spans bytes 2-3, controller 2 sits in byte 3 bits 2-6,
// controller 3 spans byte 3 bit 7 and byte 4 bits 0-3. Byte 4 bits 4-7
// are wired high on the device and never consulted.
var buttonLocus = [NumControllers][NumButtons]locus{
	{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}},
	{{2, 5}, {2, 6}, {2, 7}, {3, 0}, {3, 1}},
	{{3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}},
	{{3, 7}, {4, 0}, {4, 1}, {4, 2}, {4, 3}},
}

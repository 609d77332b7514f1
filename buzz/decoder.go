// Package buzz implements the wire codec for the Buzz quiz controller:
// decoding raw 5-byte input reports into edge-triggered button events and
// encoding LED intents into 6-byte output reports.
package buzz

import (
	"errors"
	"time"
)

// ErrShortReport is returned by Decode for buffers shorter than
// InputReportSize. It marks unusable input, as opposed to a valid report
// that produced no events.
var ErrShortReport = errors.New("buzz: input report shorter than 5 bytes")

// Decoder turns raw input reports into press/release events by comparing
// each report against the previous one. It retains the pressed state of
// all 20 buttons between calls; one Decoder corresponds to exactly one
// input stream. Sharing a Decoder across streams corrupts edge detection.
//
// Decode performs an unlocked read-modify-write of the retained state, so
// calls into a single Decoder must be serialized by the caller.
type Decoder struct {
	pressed [NumControllers][NumButtons]bool
	now     func() time.Time
}

// NewDecoder creates a Decoder with all buttons considered unpressed.
func NewDecoder() *Decoder {
	return NewDecoderWithClock(time.Now)
}

// NewDecoderWithClock creates a Decoder that timestamps events using the
// given clock instead of time.Now.
func NewDecoderWithClock(now func() time.Time) *Decoder {
	return &Decoder{now: now}
}

// Decode compares report against the retained state and returns one event
// per button whose pressed bit changed, ordered by controller then button
// regardless of bit layout. The retained state is replaced with the full
// state read from the report.
//
// Reports shorter than InputReportSize leave the retained state untouched
// and return ErrShortReport; bytes past the first five are ignored.
func (d *Decoder) Decode(report []byte) ([]ButtonEvent, error) {
	if len(report) < InputReportSize {
		return nil, ErrShortReport
	}
	ts := d.now()
	var events []ButtonEvent
	for c := 0; c < NumControllers; c++ {
		for b := 0; b < NumButtons; b++ {
			l := buttonLocus[c][b]
			cur := report[l.byteOffset]&(1<<l.bitOffset) != 0
			if cur != d.pressed[c][b] {
				action := Released
				if cur {
					action = Pressed
				}
				events = append(events, ButtonEvent{
					Controller: c,
					Button:     b,
					Name:       ButtonName[b],
					Action:     action,
					Timestamp:  ts,
				})
			}
			d.pressed[c][b] = cur
		}
	}
	return events, nil
}

// Reset clears the retained state to all-unpressed. Use it when a stream
// restarts (for example after a reconnect) so buttons held during the gap
// do not synthesize spurious release events against stale state.
func (d *Decoder) Reset() {
	d.pressed = [NumControllers][NumButtons]bool{}
}

// IsValidPress reports whether report is decodable and carries at least
// one transition. It runs Decode and therefore updates the retained state.
func (d *Decoder) IsValidPress(report []byte) bool {
	events, err := d.Decode(report)
	return err == nil && len(events) > 0
}

package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// RawLogger records raw wire reports for protocol debugging.
type RawLogger interface {
	// Log emits one report. in=true means device->host (input report),
	// in=false means host->device (LED command).
	Log(in bool, data []byte)
}

// rawLogger writes one line per report with timestamp, direction and a
// hex dump. Safe for concurrent use.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a RawLogger writing to w. A nil writer yields a no-op
// logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

func (r *rawLogger) Log(in bool, data []byte) {
	if r.w == nil || len(data) == 0 {
		return
	}

	dir := "H->D"
	if in {
		dir = "D->H"
	}

	var hexdump strings.Builder
	for i, b := range data {
		if i > 0 {
			hexdump.WriteByte(' ')
		}
		fmt.Fprintf(&hexdump, "%02x", b)
	}

	line := fmt.Sprintf("%s %s report: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir, len(data), hexdump.String())

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}

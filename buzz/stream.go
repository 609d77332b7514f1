package buzz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/openbuzz/buzzd/internal/log"
)

// Stream pumps raw input reports from one source through a private
// Decoder and publishes the resulting events on a channel. Decode calls
// are serialized by construction: one goroutine (Run) owns the Decoder.
type Stream struct {
	r      io.Reader
	dec    *Decoder
	logger *slog.Logger
	raw    log.RawLogger
	events chan ButtonEvent
}

// NewStream creates a Stream reading reports from r. The decoder must be
// private to this stream; sharing it with another source corrupts edge
// detection.
func NewStream(r io.Reader, dec *Decoder, logger *slog.Logger, raw log.RawLogger) *Stream {
	return &Stream{
		r:      r,
		dec:    dec,
		logger: logger,
		raw:    raw,
		events: make(chan ButtonEvent, 16),
	}
}

// Events returns the channel decoded events are published on. It is
// closed when Run returns.
func (s *Stream) Events() <-chan ButtonEvent {
	return s.events
}

// Reset clears the stream's decoder state. Call it only while Run is not
// executing, e.g. before restarting a stream on a reopened source.
func (s *Stream) Reset() {
	s.dec.Reset()
}

// Run reads fixed-size reports until the source is exhausted or ctx is
// cancelled. Cancellation is observed between reads; a pending blocking
// read is unblocked by closing the underlying source.
func (s *Stream) Run(ctx context.Context) error {
	defer close(s.events)

	buf := make([]byte, InputReportSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := io.ReadFull(s.r, buf)
		if n > 0 {
			s.raw.Log(true, buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("input stream ended")
				return nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				// Truncated trailing report; nothing decodable in it.
				s.logger.Debug("dropping truncated report", "len", n)
				return nil
			}
			return fmt.Errorf("read report: %w", err)
		}

		events, err := s.dec.Decode(buf)
		if err != nil {
			s.logger.Debug("dropping undecodable report", "len", n, "error", err)
			continue
		}
		for _, e := range events {
			select {
			case s.events <- e:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

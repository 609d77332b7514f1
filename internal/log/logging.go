// Package log builds the configured slog.Logger for buzzd and provides a
// raw report logger for wire-level debugging.
//
// Without a log file, records below error level go to stdout and error
// records to stderr, so normal output can be piped while errors stay
// visible on the terminal.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below slog.LevelDebug and enables raw report dumps.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to its slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout forwards each record to every handler that accepts it.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r)
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// levelBand restricts a handler to records within [min, max].
type levelBand struct {
	min, max slog.Level
	h        slog.Handler
}

func (b levelBand) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= b.min && level <= b.max && b.h.Enabled(ctx, level)
}

func (b levelBand) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < b.min || r.Level > b.max {
		return nil
	}
	return b.h.Handle(ctx, r)
}

func (b levelBand) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelBand{min: b.min, max: b.max, h: b.h.WithAttrs(attrs)}
}

func (b levelBand) WithGroup(name string) slog.Handler {
	return levelBand{min: b.min, max: b.max, h: b.h.WithGroup(name)}
}

const maxLevel = slog.Level(1<<31 - 1)

// Setup builds the logger from the configured level name and optional log
// file path. The returned closers must be closed on shutdown.
func Setup(levelName, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(levelName)

	var handlers fanout
	if logFile == "" {
		handlers = append(handlers, levelBand{
			min: level,
			max: slog.LevelError - 1,
			h:   slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
		})
		handlers = append(handlers, levelBand{
			min: slog.LevelError,
			max: maxLevel,
			h:   slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
		})
		return slog.New(handlers), nil, nil
	}

	handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return slog.New(handlers), []io.Closer{f}, nil
}

// SetupRaw builds the raw report logger from the configured level and
// optional raw log file path. Without a file, reports dump to stdout at
// trace level and are discarded otherwise. The returned closer is nil
// when no file was opened.
func SetupRaw(levelName, rawFile string) (RawLogger, io.Closer, error) {
	if rawFile != "" {
		f, err := os.OpenFile(rawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return NewRaw(f), f, nil
	}
	if ParseLevel(levelName) <= LevelTrace {
		return NewRaw(os.Stdout), nil, nil
	}
	return NewRaw(nil), nil, nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/openbuzz/buzzd/buzz"
	"github.com/openbuzz/buzzd/internal/hiddev"
	"github.com/openbuzz/buzzd/internal/log"
)

// Led writes a single LED command to the device. Timed sequences are out
// of scope; run the command again to change the pattern.
type Led struct {
	Path    string `arg:"" help:"LED output device node (e.g. /dev/hidraw0)" type:"path"`
	Pattern string `arg:"" help:"LED pattern to apply" enum:"on,off,single,count,alternating"`
	Value   string `arg:"" optional:"" help:"Pattern argument: buzzer number 1-4 (single), count 0-4 (count), even|odd (alternating)"`
}

// Run is called by Kong when the led command is executed.
func (l *Led) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	state, err := ledStateFor(l.Pattern, l.Value)
	if err != nil {
		return err
	}

	f, err := hiddev.OpenOutput(l.Path)
	if err != nil {
		return fmt.Errorf("open LED device: %w", err)
	}
	defer f.Close()

	report := state.BuildReport()
	rawLogger.Log(false, report)
	if _, err := f.Write(report); err != nil {
		return fmt.Errorf("write LED command: %w", err)
	}

	logger.Debug("LED command written", "pattern", l.Pattern, "value", l.Value)
	return nil
}

// ledStateFor builds the LedState for a pattern name and its argument.
// The codec itself clamps silently; here, at the user-facing boundary,
// a bad buzzer number or parity is a reportable error.
func ledStateFor(pattern, value string) (buzz.LedState, error) {
	switch pattern {
	case "on":
		return buzz.LedsAllOn(), nil
	case "off":
		return buzz.LedsAllOff(), nil
	case "single":
		n, err := strconv.Atoi(value)
		if err != nil || !buzz.IsValidBuzzerNumber(n) {
			return nil, fmt.Errorf("single needs a buzzer number 1-4, got %q", value)
		}
		ch, _ := buzz.ChannelForBuzzer(n)
		return buzz.LedSingle(ch), nil
	case "count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("count needs a number 0-4, got %q", value)
		}
		return buzz.LedCountUpTo(n), nil
	case "alternating":
		switch value {
		case "even", "":
			return buzz.LedsAlternating(true), nil
		case "odd":
			return buzz.LedsAlternating(false), nil
		default:
			return nil, fmt.Errorf("alternating needs even or odd, got %q", value)
		}
	default:
		return nil, fmt.Errorf("unknown pattern: %s", pattern)
	}
}

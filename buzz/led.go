package buzz

// LedState maps a 0-based channel index to whether its LED is lit.
// Channels absent from the map are unlit; entries outside 0-3 are ignored.
// An LedState is a plain value with no retained identity.
type LedState map[int]bool

// BuildReport encodes the state into the 6-byte LED output report:
// two zero header bytes followed by one byte per channel, 0xFF for lit
// and 0x00 for unlit. The protocol has no intermediate brightness.
func (s LedState) BuildReport() []byte {
	b := make([]byte, LedReportSize)
	for ch := 0; ch < NumChannels; ch++ {
		if s[ch] {
			b[2+ch] = 0xFF
		}
	}
	return b
}

// LedsAllOn returns a state with all four channels lit.
func LedsAllOn() LedState {
	s := make(LedState, NumChannels)
	for ch := 0; ch < NumChannels; ch++ {
		s[ch] = true
	}
	return s
}

// LedsAllOff returns a state with all four channels unlit.
func LedsAllOff() LedState {
	return LedState{}
}

// LedSingle returns a state with exactly the given channel lit. A channel
// outside 0-3 yields the all-unlit state rather than an error.
func LedSingle(channel int) LedState {
	if channel < 0 || channel >= NumChannels {
		return LedsAllOff()
	}
	return LedState{channel: true}
}

// LedCountUpTo returns a state with channels 0..n-1 lit. n is clamped
// to the range 0-4.
func LedCountUpTo(n int) LedState {
	if n < 0 {
		n = 0
	}
	if n > NumChannels {
		n = NumChannels
	}
	s := make(LedState, n)
	for ch := 0; ch < n; ch++ {
		s[ch] = true
	}
	return s
}

// LedsAlternating returns a state with every other channel lit: channels
// of even index when evenLit is true, odd index otherwise.
func LedsAlternating(evenLit bool) LedState {
	s := make(LedState, NumChannels/2)
	for ch := 0; ch < NumChannels; ch++ {
		if (ch%2 == 0) == evenLit {
			s[ch] = true
		}
	}
	return s
}

// IsValidBuzzerNumber reports whether n is a 1-based buzzer number as
// presented to users (1-4). Internal channel and controller indices are
// always 0-based; user-facing APIs convert at the boundary with
// ChannelForBuzzer, never inside the codec.
func IsValidBuzzerNumber(n int) bool {
	return n >= 1 && n <= NumChannels
}

// ChannelForBuzzer converts a 1-based buzzer number to its 0-based
// channel index. ok is false when n is out of range.
func ChannelForBuzzer(n int) (channel int, ok bool) {
	if !IsValidBuzzerNumber(n) {
		return 0, false
	}
	return n - 1, true
}

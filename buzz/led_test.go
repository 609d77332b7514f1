package buzz_test

import (
	"testing"

	"github.com/openbuzz/buzzd/buzz"
	"github.com/stretchr/testify/assert"
)

func TestLedStateBuildReport(t *testing.T) {
	type testCase struct {
		name           string
		state          buzz.LedState
		expectedReport []byte
	}

	cases := []testCase{
		{
			name:           "empty state is all off",
			state:          buzz.LedState{},
			expectedReport: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:           "nil state is all off",
			state:          nil,
			expectedReport: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:           "alternating channels",
			state:          buzz.LedState{0: true, 1: false, 2: true, 3: false},
			expectedReport: []byte{0x00, 0x00, 0xFF, 0x00, 0xFF, 0x00},
		},
		{
			name:           "partial state treats missing channels as unlit",
			state:          buzz.LedState{3: true},
			expectedReport: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0xFF},
		},
		{
			name:           "out of range channels ignored",
			state:          buzz.LedState{-1: true, 4: true, 99: true},
			expectedReport: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedReport, tc.state.BuildReport())
		})
	}
}

func TestLedPatterns(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, buzz.LedsAllOn().BuildReport())
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, buzz.LedsAllOff().BuildReport())

	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0xFF, 0x00}, buzz.LedSingle(2).BuildReport())
	// Out-of-range channels clamp to all-unlit, mirroring the encoder's
	// permissive handling.
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, buzz.LedSingle(-1).BuildReport())
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, buzz.LedSingle(4).BuildReport())

	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, buzz.LedCountUpTo(0).BuildReport())
	assert.Equal(t, []byte{0, 0, 0xFF, 0xFF, 0, 0}, buzz.LedCountUpTo(2).BuildReport())
	assert.Equal(t, []byte{0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, buzz.LedCountUpTo(4).BuildReport())
	assert.Equal(t, []byte{0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, buzz.LedCountUpTo(17).BuildReport())
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, buzz.LedCountUpTo(-3).BuildReport())

	assert.Equal(t, []byte{0, 0, 0xFF, 0, 0xFF, 0}, buzz.LedsAlternating(true).BuildReport())
	assert.Equal(t, []byte{0, 0, 0, 0xFF, 0, 0xFF}, buzz.LedsAlternating(false).BuildReport())
}

func TestIsValidBuzzerNumber(t *testing.T) {
	for n := 1; n <= 4; n++ {
		assert.True(t, buzz.IsValidBuzzerNumber(n), "n=%d", n)
	}
	for _, n := range []int{-1, 0, 5, 42} {
		assert.False(t, buzz.IsValidBuzzerNumber(n), "n=%d", n)
	}
}

func TestChannelForBuzzer(t *testing.T) {
	for n := 1; n <= 4; n++ {
		ch, ok := buzz.ChannelForBuzzer(n)
		assert.True(t, ok)
		assert.Equal(t, n-1, ch)
	}
	for _, n := range []int{0, 5} {
		_, ok := buzz.ChannelForBuzzer(n)
		assert.False(t, ok)
	}
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedStateFor(t *testing.T) {
	type testCase struct {
		name           string
		pattern        string
		value          string
		expectedReport []byte
	}

	cases := []testCase{
		{"all on", "on", "", []byte{0, 0, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"all off", "off", "", []byte{0, 0, 0, 0, 0, 0}},
		{"single buzzer 1 is channel 0", "single", "1", []byte{0, 0, 0xFF, 0, 0, 0}},
		{"single buzzer 3 is channel 2", "single", "3", []byte{0, 0, 0, 0, 0xFF, 0}},
		{"count two", "count", "2", []byte{0, 0, 0xFF, 0xFF, 0, 0}},
		{"count clamps high", "count", "9", []byte{0, 0, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"alternating default", "alternating", "", []byte{0, 0, 0xFF, 0, 0xFF, 0}},
		{"alternating odd", "alternating", "odd", []byte{0, 0, 0, 0xFF, 0, 0xFF}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, err := ledStateFor(tc.pattern, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedReport, state.BuildReport())
		})
	}
}

func TestLedStateForRejectsBadArguments(t *testing.T) {
	for _, tc := range []struct{ pattern, value string }{
		{"single", "0"},
		{"single", "5"},
		{"single", "x"},
		{"single", ""},
		{"count", "two"},
		{"alternating", "sideways"},
	} {
		_, err := ledStateFor(tc.pattern, tc.value)
		assert.Error(t, err, "%s %q", tc.pattern, tc.value)
	}
}

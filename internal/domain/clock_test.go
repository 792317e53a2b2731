package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want Clock
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:05", 545},
		{"23:59", 1439},
		{" 10:30 ", 630},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.want, got, "in=%q", tc.in)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "12", "ab:cd", "12:5", "-1:00", "+9:00", "-0:00", "009:00", "9:+5", " 9:00x"} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrValidation, "in=%q", in)
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0).String())
	assert.Equal(t, "09:05", Clock(545).String())
	assert.Equal(t, "23:59", Clock(1439).String())
}

func TestClockAdd_WrapsAtMidnight(t *testing.T) {
	assert.Equal(t, "00:15", NewClock(23, 45).Add(30).String())
	assert.Equal(t, "00:45", NewClock(23, 45).Add(60).String())
	assert.Equal(t, "23:30", NewClock(0, 30).Add(-60).String())
	assert.Equal(t, "10:00", NewClock(10, 0).Add(MinutesPerDay).String())
}

func TestDefaultStartTime(t *testing.T) {
	assert.Equal(t, "09:00", DefaultStartTime.String())
}

package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		offsetFromNow time.Duration
		due           bool
	}{
		{115 * time.Minute, true},  // inside the window
		{120 * time.Minute, true},  // dead center
		{125 * time.Minute, true},  // inclusive upper bound
		{108 * time.Minute, false}, // outside
		{126 * time.Minute, false},
		{114 * time.Minute, false},
		{-120 * time.Minute, false}, // already happened
	}
	for _, c := range cases {
		got := IsDue(now.Add(c.offsetFromNow), now, DefaultReminderOffsetMinutes, DefaultReminderToleranceMinutes)
		require.Equal(t, c.due, got, "appointment at now+%s", c.offsetFromNow)
	}
}

func TestIsDue_CustomOffset(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	// A "1 hour before" business with a wider tolerance.
	require.True(t, IsDue(now.Add(50*time.Minute), now, 60, 10))
	require.False(t, IsDue(now.Add(49*time.Minute), now, 60, 10))
}

package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseWorkingHours_EmptyFallsBackToDefault(t *testing.T) {
	for _, raw := range []string{"", "  ", "null"} {
		hours := ParseWorkingHours(raw)

		require.Len(t, hours, 7)
		require.True(t, hours["monday"].IsOpen)
		require.Equal(t, "09:00", hours["monday"].Start)
		require.Equal(t, "18:00", hours["saturday"].End)
		require.False(t, hours["sunday"].IsOpen)
	}
}

func TestParseWorkingHours_MalformedFallsBackToDefault(t *testing.T) {
	hours := ParseWorkingHours(`{"monday": "not an object"`)

	require.Equal(t, DefaultWorkingHours(), hours)
}

func TestParseWorkingHours_PartialKeepsOtherDays(t *testing.T) {
	hours := ParseWorkingHours(`{"tuesday": {"start": "10:00", "end": "20:00", "is_open": true}}`)

	require.Equal(t, "10:00", hours["tuesday"].Start)
	require.Equal(t, "20:00", hours["tuesday"].End)
	// Every other day keeps the default.
	require.Equal(t, "09:00", hours["monday"].Start)
	require.Equal(t, "18:00", hours["friday"].End)
	require.False(t, hours["sunday"].IsOpen)
}

func TestParseWorkingHours_CanCloseADay(t *testing.T) {
	hours := ParseWorkingHours(`{"wednesday": {"is_open": false}}`)

	wednesday := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	require.Nil(t, hours.HoursForDate(wednesday))
}

func TestHoursForDate_ClosedDayReturnsNil(t *testing.T) {
	hours := DefaultWorkingHours()

	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	require.Nil(t, hours.HoursForDate(sunday))

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	day := hours.HoursForDate(monday)
	require.NotNil(t, day)
	require.Equal(t, "09:00", day.Start)
}

func TestHoursForDate_AbsentDayReturnsNil(t *testing.T) {
	hours := WorkingHours{"monday": {Start: "09:00", End: "18:00", IsOpen: true}}

	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.Nil(t, hours.HoursForDate(tuesday))
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartsAt_IgnoresDateRenderingZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	midnight := time.Date(2026, 8, 27, 0, 0, 0, 0, loc)

	local := Appointment{Date: midnight, TimeLabel: "11:00"}
	// Same instant rendered in UTC reads as 21:00 the previous day.
	utc := Appointment{Date: midnight.UTC(), TimeLabel: "11:00"}

	want := time.Date(2026, 8, 27, 11, 0, 0, 0, loc)
	require.True(t, local.StartsAt(loc).Equal(want))
	require.True(t, utc.StartsAt(loc).Equal(want))
}

func TestStartsAt_MalformedLabelFallsBackToMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	midnight := time.Date(2026, 8, 27, 0, 0, 0, 0, loc)

	a := Appointment{Date: midnight, TimeLabel: "nonsense"}
	require.True(t, a.StartsAt(loc).Equal(midnight))
}

package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/randevum/randevu-app/utils"
)

func businessDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, utils.BusinessLocation)
}

func TestResolveSlots_ClosedDay(t *testing.T) {
	hours := DefaultWorkingHours()
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, utils.BusinessLocation)

	sunday := businessDate(2026, 8, 30)
	require.Empty(t, ResolveSlots(sunday, hours, 30, now))
}

func TestResolveSlots_FutureDayUnfiltered(t *testing.T) {
	hours := WorkingHours{"monday": {Start: "09:00", End: "17:00", IsOpen: true}}
	now := time.Date(2026, 8, 27, 14, 5, 0, 0, utils.BusinessLocation)

	monday := businessDate(2026, 8, 31)
	slots := ResolveSlots(monday, hours, 30, now)

	require.Len(t, slots, 17)
	require.Equal(t, "09:00", slots[0])
	require.Equal(t, "17:00", slots[len(slots)-1])
}

func TestResolveSlots_TodayDropsElapsedSlots(t *testing.T) {
	hours := DefaultWorkingHours()
	// Thursday 27.08.2026, 14:05 business-local.
	now := time.Date(2026, 8, 27, 14, 5, 0, 0, utils.BusinessLocation)

	slots := ResolveSlots(businessDate(2026, 8, 27), hours, 30, now)

	require.NotEmpty(t, slots)
	require.Equal(t, "14:30", slots[0])
	for _, s := range slots {
		require.Greater(t, s, "14:05")
	}
}

func TestResolveSlots_SlotEqualToNowIsExcluded(t *testing.T) {
	hours := DefaultWorkingHours()
	now := time.Date(2026, 8, 27, 14, 30, 0, 0, utils.BusinessLocation)

	slots := ResolveSlots(businessDate(2026, 8, 27), hours, 30, now)

	// The boundary is exclusive: 14:30 itself is no longer bookable.
	require.Equal(t, "15:00", slots[0])
}

func TestResolveSlots_HostTimezoneDoesNotShiftToday(t *testing.T) {
	hours := DefaultWorkingHours()
	// 23:30 UTC on the 26th is already 02:30 on the 27th business-local.
	now := time.Date(2026, 8, 26, 23, 30, 0, 0, time.UTC)

	slots := ResolveSlots(businessDate(2026, 8, 27), hours, 30, now)

	// The requested date is "today" in business terms; early morning, so
	// the full day is still ahead.
	require.Len(t, slots, 19)
	require.Equal(t, "09:00", slots[0])
}

func TestResolveSlots_PastDateReturnsUnfilteredList(t *testing.T) {
	hours := DefaultWorkingHours()
	now := time.Date(2026, 8, 27, 14, 5, 0, 0, utils.BusinessLocation)

	// Carried-over behavior: a past date is not "today", so it gets the
	// full list. Callers refuse past dates before resolving.
	slots := ResolveSlots(businessDate(2026, 8, 25), hours, 30, now)
	require.Len(t, slots, 19)
}

func TestResolveSlots_SubHourStartUsesHourOnly(t *testing.T) {
	hours := WorkingHours{"monday": {Start: "09:30", End: "17:00", IsOpen: true}}
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, utils.BusinessLocation)

	slots := ResolveSlots(businessDate(2026, 8, 31), hours, 30, now)

	// Only the hour feeds generation, so 09:00 still appears.
	require.Equal(t, "09:00", slots[0])
}

func TestResolveSlots_EndToEndSundayClosedMondayOpen(t *testing.T) {
	hours := DefaultWorkingHours()
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, utils.BusinessLocation)

	require.Empty(t, ResolveSlots(businessDate(2026, 8, 30), hours, 20, now))

	slots := ResolveSlots(businessDate(2026, 8, 31), hours, 20, now)
	require.Len(t, slots, 28)
	require.Equal(t, "09:00", slots[0])
	require.Equal(t, "18:00", slots[len(slots)-1])
}

func TestResolveSlots_MalformedDayEntry(t *testing.T) {
	hours := WorkingHours{"monday": {Start: "soon", End: "late", IsOpen: true}}
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, utils.BusinessLocation)

	require.Empty(t, ResolveSlots(businessDate(2026, 8, 31), hours, 30, now))
}

func TestResolveSlots_ZeroIntervalUsesDefault(t *testing.T) {
	hours := DefaultWorkingHours()
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, utils.BusinessLocation)

	slots := ResolveSlots(businessDate(2026, 8, 31), hours, 0, now)
	require.Len(t, slots, 19)
}

package availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/randevum/randevu-app/utils"
)

// DefaultSlotIntervalMinutes applies when a business never configured
// its booking grid.
const DefaultSlotIntervalMinutes = 30

// ResolveSlots returns the bookable slot labels for one calendar date.
//
// Closed days resolve to an empty list. Future dates get the full
// generated list. For "today" (compared in business-local calendar
// terms, never on raw instants) every slot at or before the current
// local time is dropped: the boundary is exclusive, a slot equal to
// "now" is no longer bookable.
//
// Two behaviors are carried over from the original scheduling rules on
// purpose: only the hour of Start/End feeds slot generation, so a
// "09:30" opening still yields a "09:00" slot; and a past date fails
// the today check and therefore resolves to the unfiltered full list —
// callers that must refuse past dates do so before calling.
func ResolveSlots(date time.Time, hours WorkingHours, intervalMinutes int, now time.Time) []string {
	day := hours.HoursForDate(date)
	if day == nil {
		return []string{}
	}

	startHour, okStart := labelHour(day.Start)
	endHour, okEnd := labelHour(day.End)
	if !okStart || !okEnd {
		return []string{}
	}
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSlotIntervalMinutes
	}

	slots := GenerateSlots(startHour, endHour, intervalMinutes)

	local := utils.ToBusinessTime(now)
	if !utils.SameDate(date, local) {
		return slots
	}

	nowMinutes := local.Hour()*60 + local.Minute()
	remaining := []string{}
	for _, slot := range slots {
		if labelMinutes(slot) > nowMinutes {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

// labelHour extracts the hour component of an "HH:MM" label.
func labelHour(label string) (int, bool) {
	head, _, found := strings.Cut(label, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// labelMinutes converts an "HH:MM" label to minutes since midnight.
func labelMinutes(label string) int {
	head, tail, found := strings.Cut(label, ":")
	if !found {
		return 0
	}
	hour, _ := strconv.Atoi(head)
	minute, _ := strconv.Atoi(tail)
	return hour*60 + minute
}

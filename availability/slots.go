package availability

import "fmt"

// GenerateSlots produces the candidate slot labels for one working day,
// from startHour:00 up to and including endHour:00, stepping by
// intervalMinutes within each hour. The closing hour contributes only
// its ":00" label: endHour means "last appointment may start at the top
// of this hour", not a full hour of slots.
//
// Degenerate input (endHour < startHour, intervalMinutes <= 0) yields
// an empty list; an empty slot list is a valid "no availability" signal.
func GenerateSlots(startHour, endHour, intervalMinutes int) []string {
	slots := []string{}
	if endHour < startHour || intervalMinutes <= 0 {
		return slots
	}
	for hour := startHour; hour <= endHour; hour++ {
		if hour == endHour {
			slots = append(slots, fmt.Sprintf("%02d:00", hour))
			break
		}
		for minute := 0; minute < 60; minute += intervalMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

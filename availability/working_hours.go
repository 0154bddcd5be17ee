package availability

import (
	"encoding/json"
	"strings"
	"time"
)

// DayHours is one weekday's open/close configuration. Start and End are
// "HH:MM" in 24h form and must be ignored whenever IsOpen is false.
type DayHours struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	IsOpen bool   `json:"is_open"`
}

// WorkingHours maps lowercase weekday names ("monday".."sunday") to
// that day's configuration.
type WorkingHours map[string]DayHours

// DefaultWorkingHours returns the platform default: Monday to Saturday
// 09:00-18:00 open, Sunday closed. Client UIs assume exactly this
// shape for businesses that never saved a schedule.
func DefaultWorkingHours() WorkingHours {
	hours := WorkingHours{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		hours[day] = DayHours{Start: "09:00", End: "18:00", IsOpen: true}
	}
	hours["sunday"] = DayHours{Start: "09:00", End: "18:00", IsOpen: false}
	return hours
}

// ParseWorkingHours turns the business settings JSON into a WorkingHours
// value. Missing or malformed input falls back to the full default, and
// a partial object keeps the default for every day it does not mention,
// so customizing one day never loses the others. Availability must not
// hard-fail a booking page, hence no error return.
func ParseWorkingHours(raw string) WorkingHours {
	hours := DefaultWorkingHours()
	if strings.TrimSpace(raw) == "" || raw == "null" {
		return hours
	}

	var saved map[string]DayHours
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return hours
	}
	for day, cfg := range saved {
		if _, ok := hours[strings.ToLower(day)]; ok {
			hours[strings.ToLower(day)] = cfg
		}
	}
	return hours
}

// HoursForDate maps a calendar date to its weekday entry. It returns
// nil for closed days and for days absent from the configuration;
// callers must treat nil as "no slots".
func (wh WorkingHours) HoursForDate(date time.Time) *DayHours {
	day, ok := wh[strings.ToLower(date.Weekday().String())]
	if !ok || !day.IsOpen {
		return nil
	}
	return &day
}

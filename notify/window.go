package notify

import "time"

const (
	// DefaultReminderOffsetMinutes is the "2 hours before" reminder target.
	DefaultReminderOffsetMinutes = 120
	// DefaultReminderToleranceMinutes widens the match to a 10-minute
	// window. The sweep runs every 5 minutes; the window must be at
	// least as wide as the sweep period or appointments fall through
	// between ticks. It may match the same appointment on two
	// consecutive ticks, which is why the persisted flag, not the
	// window, carries idempotency.
	DefaultReminderToleranceMinutes = 5
)

// IsDue reports whether an appointment scheduled at appointmentAt falls
// inside [now+offset-tolerance, now+offset+tolerance]. Both bounds are
// inclusive.
func IsDue(appointmentAt, now time.Time, offsetMinutes, toleranceMinutes int) bool {
	target := now.Add(time.Duration(offsetMinutes) * time.Minute)
	tolerance := time.Duration(toleranceMinutes) * time.Minute
	diff := appointmentAt.Sub(target)
	return diff >= -tolerance && diff <= tolerance
}

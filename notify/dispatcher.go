package notify

import (
	"log"
	"time"

	"github.com/randevum/randevu-app/models"
	"github.com/randevum/randevu-app/utils"
)

// Clock abstracts "now" so sweeps can be tested against a fixed moment.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type Outcome string

const (
	OutcomeSent     Outcome = "sent"
	OutcomeDeclined Outcome = "declined"
	OutcomeError    Outcome = "error"
)

// DispatchResult is the outcome of a single-appointment dispatch.
// Declines (already sent, opted out, no phone) are expected and are not
// errors.
type DispatchResult struct {
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
}

// SweepResult aggregates one cron-triggered run.
type SweepResult struct {
	Checked int `json:"checked"`
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`
}

// Dispatcher owns the three message flows: booking confirmations, the
// reminder sweep, and the two daily digests. Every flow processes its
// items sequentially and independently; one failed item never aborts
// the rest.
type Dispatcher struct {
	store  Store
	sender Sender
	clock  Clock
	// sendDelay throttles consecutive gateway sends; the gateway rate
	// limit is per-number-per-second and bursts get dropped silently.
	sendDelay time.Duration
}

func NewDispatcher(store Store, sender Sender) *Dispatcher {
	return &Dispatcher{
		store:     store,
		sender:    sender,
		clock:     systemClock{},
		sendDelay: 500 * time.Millisecond,
	}
}

// SendConfirmation dispatches the booking confirmation for one
// appointment. The flag is claimed with a conditional update before the
// gateway call and released if the call fails, so a concurrent or
// repeated invocation can never produce a second message, and a failed
// one stays retryable by the caller. A skipped send (opt-out, missing
// phone) never sets the flag.
func (d *Dispatcher) SendConfirmation(appointmentID uint) (DispatchResult, error) {
	appointment, err := d.store.Appointment(appointmentID)
	if err != nil {
		return DispatchResult{Outcome: OutcomeError, Reason: "appointment not found"}, err
	}
	if appointment.ConfirmationSent {
		return DispatchResult{Outcome: OutcomeDeclined, Reason: "confirmation already sent"}, nil
	}

	customer, err := d.store.Customer(appointment.CustomerID)
	if err != nil {
		return DispatchResult{Outcome: OutcomeError, Reason: "customer not found"}, err
	}
	if !customer.WhatsappNotifications {
		return DispatchResult{Outcome: OutcomeDeclined, Reason: "customer opted out of whatsapp notifications"}, nil
	}
	if customer.PhoneNumber == "" {
		return DispatchResult{Outcome: OutcomeDeclined, Reason: "customer has no phone number"}, nil
	}

	claimed, err := d.store.ClaimConfirmation(appointment.ID, d.clock.Now())
	if err != nil {
		return DispatchResult{Outcome: OutcomeError, Reason: "failed to update delivery flag"}, err
	}
	if !claimed {
		return DispatchResult{Outcome: OutcomeDeclined, Reason: "confirmation already sent"}, nil
	}

	body := ComposeConfirmation(appointment, customer, &appointment.Business)
	if err := d.sender.Send(utils.NormalizePhone(customer.PhoneNumber), body); err != nil {
		if relErr := d.store.ReleaseConfirmation(appointment.ID); relErr != nil {
			log.Printf("Failed to release confirmation flag for appointment %d: %v", appointment.ID, relErr)
		}
		return DispatchResult{Outcome: OutcomeError, Reason: "gateway send failed"}, err
	}
	return DispatchResult{Outcome: OutcomeSent}, nil
}

// SweepReminders runs one reminder pass over today's confirmed,
// not-yet-reminded appointments. Appointments outside the reminder
// window are left for a later tick.
func (d *Dispatcher) SweepReminders() (SweepResult, error) {
	var result SweepResult

	now := utils.ToBusinessTime(d.clock.Now())
	today := utils.Midnight(now)

	due, err := d.store.RemindersDue(today)
	if err != nil {
		return result, err
	}

	for i := range due {
		appointment := &due[i]
		result.Checked++

		offset := appointment.Business.ReminderOffsetMinutes
		if offset <= 0 {
			offset = DefaultReminderOffsetMinutes
		}
		if !IsDue(appointment.StartsAt(utils.BusinessLocation), now, offset, DefaultReminderToleranceMinutes) {
			result.Skipped++
			continue
		}

		customer := appointment.Customer
		if !customer.WhatsappNotifications || customer.PhoneNumber == "" {
			result.Skipped++
			continue
		}

		claimed, err := d.store.ClaimReminder(appointment.ID, d.clock.Now())
		if err != nil {
			log.Printf("Failed to claim reminder flag for appointment %d: %v", appointment.ID, err)
			result.Errored++
			continue
		}
		if !claimed {
			result.Skipped++
			continue
		}

		body := ComposeReminder(appointment, &customer, &appointment.Business)
		if err := d.sender.Send(utils.NormalizePhone(customer.PhoneNumber), body); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			if relErr := d.store.ReleaseReminder(appointment.ID); relErr != nil {
				log.Printf("Failed to release reminder flag for appointment %d: %v", appointment.ID, relErr)
			}
			result.Errored++
		} else {
			result.Sent++
		}
		time.Sleep(d.sendDelay)
	}
	return result, nil
}

// SendStaffDigests sends each active staff member their numbered
// itinerary for today. Staff with no appointments get no message. There
// is no persisted per-day flag for digests: the scheduler is trusted to
// fire this once per day.
func (d *Dispatcher) SendStaffDigests() (SweepResult, error) {
	var result SweepResult
	today := utils.Midnight(d.clock.Now())

	staff, err := d.store.ActiveStaff()
	if err != nil {
		return result, err
	}

	for i := range staff {
		member := &staff[i]
		result.Checked++

		appointments, err := d.store.StaffAppointments(member.ID, today)
		if err != nil {
			log.Printf("Failed to load appointments for staff %d: %v", member.ID, err)
			result.Errored++
			continue
		}
		if len(appointments) == 0 {
			result.Skipped++
			continue
		}

		body := ComposeStaffDigest(member, appointments, today)
		if err := d.sender.Send(utils.NormalizePhone(member.PhoneNumber), body); err != nil {
			log.Printf("Failed to send staff digest to %d: %v", member.ID, err)
			result.Errored++
		} else {
			result.Sent++
		}
		time.Sleep(d.sendDelay)
	}
	return result, nil
}

// SendOwnerDigests sends each active business its end-of-day summary.
// Businesses with no appointments today get no message. Like the staff
// digest, exactly-once depends on the scheduler firing once per day.
func (d *Dispatcher) SendOwnerDigests() (SweepResult, error) {
	var result SweepResult
	today := utils.Midnight(d.clock.Now())

	businesses, err := d.store.ActiveBusinesses()
	if err != nil {
		return result, err
	}

	for i := range businesses {
		business := &businesses[i]
		result.Checked++

		appointments, err := d.store.BusinessAppointments(business.ID, today)
		if err != nil {
			log.Printf("Failed to load appointments for business %d: %v", business.ID, err)
			result.Errored++
			continue
		}
		if len(appointments) == 0 {
			result.Skipped++
			continue
		}

		body := ComposeOwnerDigest(business, SummarizeDay(appointments), today)
		if err := d.sender.Send(utils.NormalizePhone(business.PhoneNumber), body); err != nil {
			log.Printf("Failed to send owner digest to business %d: %v", business.ID, err)
			result.Errored++
		} else {
			result.Sent++
		}
		time.Sleep(d.sendDelay)
	}
	return result, nil
}

// DailySummary aggregates one business day for the owner digest.
type DailySummary struct {
	Served          int
	Cancelled       int
	NoShows         int
	CashRevenue     float64
	CardRevenue     float64
	PackageSessions int
}

// SummarizeDay counts outcomes and splits revenue by payment method.
// Only completed appointments count as revenue; package-paid ones burn
// a prepaid credit instead of producing cash.
func SummarizeDay(appointments []models.Appointment) DailySummary {
	var summary DailySummary
	for _, a := range appointments {
		switch a.Status {
		case models.StatusCompleted:
			summary.Served++
			switch a.PaymentMethod {
			case models.PaymentCash:
				summary.CashRevenue += a.Price
			case models.PaymentCard:
				summary.CardRevenue += a.Price
			case models.PaymentPackage:
				summary.PackageSessions++
			}
		case models.StatusCancelled:
			summary.Cancelled++
		case models.StatusNoShow:
			summary.NoShows++
		}
	}
	return summary
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentCard    PaymentMethod = "card"
	PaymentPackage PaymentMethod = "package"
)

type Appointment struct {
	gorm.Model
	BusinessID uint     `json:"business_id"`
	Business   Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	StaffID    uint     `json:"staff_id"`
	Staff      User     `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	CustomerID uint     `json:"customer_id"`
	Customer   Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceID  uint     `json:"service_id"`
	Service    Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`

	// Date is the business-local calendar date at midnight.
	Date time.Time `json:"date"`
	// TimeLabel is the booked start time as "HH:MM" in 24h form.
	TimeLabel string `json:"time" gorm:"column:time_label"`

	Status        AppointmentStatus `json:"status"`
	Price         float64           `json:"price"`
	PaymentMethod PaymentMethod     `json:"payment_method" gorm:"default:cash"`

	// Delivery flags. Each transitions false->true exactly once; the
	// dispatcher claims the flag with a conditional update before sending
	// and releases it again if the gateway call fails.
	ConfirmationSent   bool       `json:"confirmation_sent" gorm:"default:false"`
	ConfirmationSentAt *time.Time `json:"confirmation_sent_at"`
	ReminderSent       bool       `json:"reminder_sent" gorm:"default:false"`
	ReminderSentAt     *time.Time `json:"reminder_sent_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.PaymentMethod == "" {
		a.PaymentMethod = PaymentCash
	}
	return nil
}

// StartsAt combines Date and TimeLabel into the appointment's start
// moment in the given location. Date is normalized into loc first: the
// driver may hand the stored midnight back in any zone (UTC session,
// host zone), and reading Year/Month/Day off the wrong rendering
// shifts the appointment a whole day. A malformed label maps to midnight.
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	hour, minute := 0, 0
	if t, err := time.Parse("15:04", a.TimeLabel); err == nil {
		hour, minute = t.Hour(), t.Minute()
	}
	day := a.Date.In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
}

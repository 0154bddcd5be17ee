package notify

import (
	"time"

	"github.com/randevum/randevu-app/models"
)

// Store is the persistence surface the dispatcher needs. The gorm
// implementation lives in gorm_store.go; tests supply mocks.
type Store interface {
	Appointment(id uint) (*models.Appointment, error)
	Customer(id uint) (*models.Customer, error)
	Business(id uint) (*models.Business, error)

	// RemindersDue returns confirmed, not-yet-reminded appointments on
	// the given business-local date, with Customer/Business/Service/Staff
	// loaded.
	RemindersDue(date time.Time) ([]models.Appointment, error)

	ActiveStaff() ([]models.User, error)
	StaffAppointments(staffID uint, date time.Time) ([]models.Appointment, error)
	ActiveBusinesses() ([]models.Business, error)
	BusinessAppointments(businessID uint, date time.Time) ([]models.Appointment, error)

	// ClaimConfirmation / ClaimReminder flip the delivery flag with a
	// single conditional update and report whether this caller won the
	// claim. Release* undoes a claim after a failed gateway send.
	ClaimConfirmation(id uint, at time.Time) (bool, error)
	ReleaseConfirmation(id uint) error
	ClaimReminder(id uint, at time.Time) (bool, error)
	ReleaseReminder(id uint) error
}

package notify

import (
	"time"

	"gorm.io/gorm"

	"github.com/randevum/randevu-app/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Appointment(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.Preload("Business").Preload("Service").Preload("Staff").
		First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *GormStore) Customer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *GormStore) Business(id uint) (*models.Business, error) {
	var business models.Business
	if err := s.db.First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (s *GormStore) RemindersDue(date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Preload("Customer").Preload("Business").Preload("Service").Preload("Staff").
		Where("status = ? AND reminder_sent = ? AND date = ?", models.StatusConfirmed, false, date).
		Find(&appointments).Error
	return appointments, err
}

func (s *GormStore) ActiveStaff() ([]models.User, error) {
	var staff []models.User
	err := s.db.Where("is_active = ? AND phone_number <> ''", true).Find(&staff).Error
	return staff, err
}

func (s *GormStore) StaffAppointments(staffID uint, date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	// "scheduled" covers rows imported from the previous system.
	err := s.db.Preload("Customer").Preload("Service").
		Where("staff_id = ? AND date = ? AND status IN ?", staffID, date,
			[]string{string(models.StatusConfirmed), string(models.StatusPending), "scheduled"}).
		Order("time_label asc").
		Find(&appointments).Error
	return appointments, err
}

func (s *GormStore) ActiveBusinesses() ([]models.Business, error) {
	var businesses []models.Business
	err := s.db.Where("is_active = ? AND phone_number <> ''", true).Find(&businesses).Error
	return businesses, err
}

func (s *GormStore) BusinessAppointments(businessID uint, date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("business_id = ? AND date = ?", businessID, date).
		Find(&appointments).Error
	return appointments, err
}

// claimFlag performs the atomic check-and-set: the WHERE clause only
// matches while the flag is still false, so under concurrent sweeps at
// most one caller sees RowsAffected == 1.
func (s *GormStore) claimFlag(id uint, flagColumn, atColumn string, at time.Time) (bool, error) {
	res := s.db.Model(&models.Appointment{}).
		Where("id = ? AND "+flagColumn+" = ?", id, false).
		Updates(map[string]interface{}{flagColumn: true, atColumn: at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *GormStore) releaseFlag(id uint, flagColumn, atColumn string) error {
	return s.db.Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{flagColumn: false, atColumn: nil}).Error
}

func (s *GormStore) ClaimConfirmation(id uint, at time.Time) (bool, error) {
	return s.claimFlag(id, "confirmation_sent", "confirmation_sent_at", at)
}

func (s *GormStore) ReleaseConfirmation(id uint) error {
	return s.releaseFlag(id, "confirmation_sent", "confirmation_sent_at")
}

func (s *GormStore) ClaimReminder(id uint, at time.Time) (bool, error) {
	return s.claimFlag(id, "reminder_sent", "reminder_sent_at", at)
}

func (s *GormStore) ReleaseReminder(id uint) error {
	return s.releaseFlag(id, "reminder_sent", "reminder_sent_at")
}

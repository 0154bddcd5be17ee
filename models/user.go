package models

import (
	"time"
)

// User is a staff member of a business.
type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	PhoneNumber  string        `json:"phone_number"`
	IsActive     bool          `json:"is_active" gorm:"default:true"`
	BusinessID   uint          `json:"business_id"`
	Business     Business      `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:StaffID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

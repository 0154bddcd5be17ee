package models

import (
	"gorm.io/gorm"
)

// Business is one salon/clinic tenant on the platform.
type Business struct {
	gorm.Model
	Name        string `json:"name"`
	OwnerName   string `json:"owner_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// SlotIntervalMinutes is the booking grid step for this business.
	SlotIntervalMinutes int `json:"slot_interval_minutes" gorm:"default:30"`
	// ReminderOffsetMinutes is how long before the appointment the
	// reminder message goes out.
	ReminderOffsetMinutes int `json:"reminder_offset_minutes" gorm:"default:120"`
	// WorkingHours holds the per-weekday open/close configuration as JSON.
	// Parsed by availability.ParseWorkingHours; empty means defaults.
	WorkingHours string `json:"working_hours"`

	Staff     []User     `json:"staff,omitempty" gorm:"foreignKey:BusinessID"`
	Customers []Customer `json:"customers,omitempty" gorm:"foreignKey:BusinessID"`
	Services  []Service  `json:"services,omitempty" gorm:"foreignKey:BusinessID"`
}

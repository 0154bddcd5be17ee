package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	BusinessID      uint    `json:"business_id"`
	Business        Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
}

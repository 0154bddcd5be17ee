package models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	// WhatsappNotifications is the opt-in flag; no message is ever sent
	// when it is false or the phone number is empty.
	WhatsappNotifications bool     `json:"whatsapp_notifications" gorm:"default:true"`
	BusinessID            uint     `json:"business_id"`
	Business              Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
}

package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint `gorm:"index" json:"salon_id"`

	ClientID uint    `json:"client_id"`
	Client   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	AppointmentID uint `gorm:"uniqueIndex" json:"appointment_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

type Notification struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	RecipientID   uint   `gorm:"index" json:"recipient_id"`
	SalonID       uint   `json:"salon_id"`
	AppointmentID uint   `json:"appointment_id"`
	Kind          string `gorm:"size:50" json:"kind"`

	OldStatus string `gorm:"size:20" json:"old_status"`
	NewStatus string `gorm:"size:20" json:"new_status"`

	Message string `gorm:"size:255" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}

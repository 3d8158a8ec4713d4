package models

import "time"

// ===============================
// Roles
// ===============================

const (
	RoleClient     = "client"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint    `gorm:"uniqueIndex" json:"owner_id"`
	Owner   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`

	// IANA timezone usado para interpretar datas/horas do salão
	Timezone string `gorm:"size:50;default:'America/Sao_Paulo'" json:"timezone"`

	// JSON: dia da semana -> faixa em texto livre ("09:00 - 19:00")
	OpeningHours string `gorm:"type:text" json:"opening_hours"`

	// JSON: lista de diferenciais ("wifi", "estacionamento", ...)
	Differentiators string `gorm:"type:text" json:"differentiators"`

	About  string `gorm:"type:text" json:"about"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

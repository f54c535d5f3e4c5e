package model

import "github.com/google/uuid"

// Service is a bookable offering. Duration drives end-time derivation;
// price is snapshotted onto appointments at booking time.
type Service struct {
	Base

	SalonID uuid.UUID `gorm:"type:uuid;not null;index" json:"salon_id"`
	Salon   *Salon    `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `json:"description"`

	// DurationMin must be positive.
	DurationMin int `gorm:"not null" json:"duration"`

	// Price in minor currency units, never negative.
	Price int64 `gorm:"not null" json:"price"`

	Category string `gorm:"size:100;default:other" json:"category"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

package model

import (
	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
)

// Master is a staff member who performs services. A master belongs to
// exactly one salon and offers a subset of the salon's services.
type Master struct {
	Base

	SalonID uuid.UUID `gorm:"type:uuid;not null;index" json:"salon_id"`
	Salon   *Salon    `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name        string     `gorm:"size:255;not null" json:"name"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Email       string     `gorm:"size:255" json:"email"`
	Specialties StringList `gorm:"type:jsonb" json:"specialties"`
	Description string     `json:"description"`
	Rating      float64    `gorm:"default:5.0" json:"rating"`

	// WorkSchedule is the master's own per-weekday calendar, including the
	// optional break window. It narrows, not widens, availability.
	WorkSchedule schedule.Week `gorm:"type:jsonb" json:"work_schedule"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	Services []Service `gorm:"many2many:master_services;constraint:OnDelete:CASCADE" json:"services,omitempty"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a salon customer. Phone is the dedupe/lookup key and is stored
// normalized to E.164. The aggregate fields are maintained exclusively by
// the appointment ledger on transitions to completed.
type Client struct {
	Base

	SalonID uuid.UUID `gorm:"type:uuid;not null;index" json:"salon_id"`
	Salon   *Salon    `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name     string     `gorm:"size:255;not null" json:"name"`
	Phone    string     `gorm:"size:20;not null;index" json:"phone"`
	Email    string     `gorm:"size:255" json:"email"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Notes    string     `json:"notes"`

	VisitsCount int        `gorm:"default:0" json:"visits_count"`
	TotalSpent  int64      `gorm:"default:0" json:"total_spent"`
	LastVisit   *time.Time `json:"last_visit,omitempty"`
}

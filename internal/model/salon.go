package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
)

// Salon is the tenant root. All other entities cascade on its deletion.
type Salon struct {
	Base

	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`

	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	WorkHours schedule.Week `gorm:"type:jsonb" json:"work_hours"`
	Settings  Settings      `gorm:"type:jsonb" json:"settings"`

	SubscriptionPlan    string     `gorm:"size:50;default:basic" json:"subscription_plan"`
	SubscriptionExpires *time.Time `json:"subscription_expires,omitempty"`
}

// Settings is the salon's booking policy, stored as JSONB.
type Settings struct {
	// SlotDurationMin is the slot granularity for availability quantization.
	SlotDurationMin int `json:"slot_duration"`
	// AdvanceBookingDays bounds how far ahead the public may book.
	AdvanceBookingDays int `json:"advance_booking_days"`
	// CancellationHours is the cutoff inside which cancellations are
	// flagged to the operator. Never enforced as a hard block.
	CancellationHours int `json:"cancellation_hours"`
}

// DefaultSettings mirrors the defaults a freshly registered salon gets.
func DefaultSettings() Settings {
	return Settings{
		SlotDurationMin:    30,
		AdvanceBookingDays: 30,
		CancellationHours:  2,
	}
}

func (s Settings) Validate() error {
	if s.SlotDurationMin <= 0 {
		return fmt.Errorf("slot_duration must be positive")
	}
	if s.AdvanceBookingDays <= 0 {
		return fmt.Errorf("advance_booking_days must be positive")
	}
	if s.CancellationHours < 0 {
		return fmt.Errorf("cancellation_hours must not be negative")
	}
	return nil
}

func (s Settings) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Settings) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = Settings{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Settings", src)
	}
}

package model

import (
	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
)

// Status is the appointment lifecycle state.
type Status string

const (
	// StatusConfirmed is the initial state set by the booking validator.
	StatusConfirmed Status = "confirmed"
	// Terminal states, each reachable only from confirmed.
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo encodes the state machine: confirmed may move to any
// terminal state; terminal states admit no transition.
func (s Status) CanTransitionTo(to Status) bool {
	if s != StatusConfirmed {
		return false
	}
	switch to {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Blocks reports whether an appointment in this status occupies its slot.
// Cancelled and no-show appointments free the slot.
func (s Status) Blocks() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// Appointment is one ledger entry. EndTime is always derived from the
// service duration at booking time; Price is a snapshot of the service
// price (possibly overridden) and never drifts with later catalog edits.
type Appointment struct {
	Base

	SalonID   uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_salon_date" json:"salon_id"`
	MasterID  uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_master_date" json:"master_id"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	Salon   *Salon   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Master  *Master  `gorm:"constraint:OnDelete:CASCADE" json:"master,omitempty"`
	Service *Service `gorm:"constraint:OnDelete:CASCADE" json:"service,omitempty"`
	Client  *Client  `gorm:"constraint:OnDelete:CASCADE" json:"client,omitempty"`

	// Date is the salon-local calendar day, formatted as DateLayout.
	Date string `gorm:"type:date;not null;index:idx_appointments_salon_date;index:idx_appointments_master_date" json:"date"`

	StartTime schedule.TimeOfDay `gorm:"type:time;not null" json:"start_time"`
	EndTime   schedule.TimeOfDay `gorm:"type:time;not null" json:"end_time"`

	Status Status `gorm:"size:20;not null;default:confirmed" json:"status"`

	// Price snapshot in minor currency units.
	Price int64 `json:"price"`
	Notes string `json:"notes"`
}

// Range returns the occupied [start, end) interval.
func (a *Appointment) Range() schedule.Range {
	return schedule.Range{Start: a.StartTime, End: a.EndTime}
}

// Package repository is the persistence layer. Every query is scoped by
// salon ID; cross-tenant reads are impossible by construction because no
// method accepts a query without one (public catalog reads take the salon
// ID from the URL path instead of the token, but are scoped all the same).
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist in the
	// caller's salon scope.
	ErrNotFound = errors.New("record not found")

	// ErrOverlap is returned by AppointmentRepository.Book when the
	// requested interval collides with a blocking appointment.
	ErrOverlap = errors.New("appointment interval overlaps an existing booking")
)

// Repository bundles the per-entity repositories over one database handle.
type Repository struct {
	Salon       SalonRepository
	Master      MasterRepository
	Service     ServiceRepository
	Client      ClientRepository
	Appointment AppointmentRepository
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		Salon:       &salonRepo{db: db},
		Master:      &masterRepo{db: db},
		Service:     &serviceRepo{db: db},
		Client:      &clientRepo{db: db},
		Appointment: &appointmentRepo{db: db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

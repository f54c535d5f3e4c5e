package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
)

// ListFilter narrows an appointment listing. Nil fields are ignored.
type ListFilter struct {
	MasterID *uuid.UUID
	ClientID *uuid.UUID
	Status   *model.Status
	From     *string // inclusive date, DateLayout
	To       *string // exclusive date, DateLayout
	Page     int
	PerPage  int
}

type AppointmentRepository interface {
	List(ctx context.Context, salonID uuid.UUID, f ListFilter) ([]model.Appointment, error)
	GetByID(ctx context.Context, salonID, id uuid.UUID) (*model.Appointment, error)

	// Blocking returns the confirmed/completed appointments occupying the
	// master's calendar on the given date, ordered by start time.
	Blocking(ctx context.Context, masterID uuid.UUID, date string) ([]model.Appointment, error)

	// Book atomically re-checks the half-open overlap condition against
	// blocking appointments for the same master and date and inserts the
	// row, all in one transaction. Returns ErrOverlap on collision.
	Book(ctx context.Context, appt *model.Appointment) error

	// Transition updates the status and, when the target state is
	// completed, the client aggregates, in a single transaction.
	Transition(ctx context.Context, appt *model.Appointment, to model.Status) error
}

type appointmentRepo struct {
	db *gorm.DB
}

func (r *appointmentRepo) List(ctx context.Context, salonID uuid.UUID, f ListFilter) ([]model.Appointment, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}

	q := r.db.WithContext(ctx).
		Preload("Master").Preload("Service").Preload("Client").
		Where("salon_id = ?", salonID)

	if f.MasterID != nil {
		q = q.Where("master_id = ?", *f.MasterID)
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date < ?", *f.To)
	}

	var appts []model.Appointment
	err := q.Order("date DESC, start_time DESC").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, salonID, id uuid.UUID) (*model.Appointment, error) {
	var appt model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Master").Preload("Service").Preload("Client").
		First(&appt, "id = ? AND salon_id = ?", id, salonID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appt, nil
}

func (r *appointmentRepo) Blocking(ctx context.Context, masterID uuid.UUID, date string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Where("master_id = ? AND date = ? AND status IN ?",
			masterID, date, []model.Status{model.StatusConfirmed, model.StatusCompleted}).
		Order("start_time").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("list blocking appointments: %w", err)
	}
	return appts, nil
}

func (r *appointmentRepo) Book(ctx context.Context, appt *model.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the master's blocking rows for the date so a concurrent
		// booking for the same calendar cannot interleave the check and
		// the insert.
		var conflicts int64
		err := tx.Model(&model.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("master_id = ? AND date = ? AND status IN ?",
				appt.MasterID, appt.Date,
				[]model.Status{model.StatusConfirmed, model.StatusCompleted}).
			Where("start_time < ? AND end_time > ?", appt.EndTime, appt.StartTime).
			Count(&conflicts).Error
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if conflicts > 0 {
			return ErrOverlap
		}
		if err := tx.Create(appt).Error; err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
}

func (r *appointmentRepo) Transition(ctx context.Context, appt *model.Appointment, to model.Status) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Appointment{}).
			Where("id = ? AND status = ?", appt.ID, appt.Status).
			Update("status", to)
		if res.Error != nil {
			return fmt.Errorf("update appointment status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// The status changed underneath us; let the caller re-read.
			return ErrNotFound
		}

		if to == model.StatusCompleted {
			visitDate, err := time.Parse(model.DateLayout, appt.Date)
			if err != nil {
				return fmt.Errorf("parse appointment date: %w", err)
			}
			err = tx.Model(&model.Client{}).
				Where("id = ?", appt.ClientID).
				Updates(map[string]any{
					"visits_count": gorm.Expr("visits_count + 1"),
					"total_spent":  gorm.Expr("total_spent + ?", appt.Price),
					"last_visit":   visitDate,
				}).Error
			if err != nil {
				return fmt.Errorf("update client aggregates: %w", err)
			}
		}

		appt.Status = to
		return nil
	})
}

// IsRetryable reports whether err is a transient serialization or deadlock
// failure worth one retry.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure, deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

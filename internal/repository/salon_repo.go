package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
)

// Stats is the dashboard summary for one salon.
type Stats struct {
	TodayAppointments int64 `json:"today_appointments"`
	WeekAppointments  int64 `json:"week_appointments"`
	WeekRevenue       int64 `json:"week_revenue"`
	TotalClients      int64 `json:"total_clients"`
}

type SalonRepository interface {
	Create(ctx context.Context, salon *model.Salon) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Salon, error)
	GetByEmail(ctx context.Context, email string) (*model.Salon, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, salon *model.Salon) error
	Stats(ctx context.Context, salonID uuid.UUID, today, weekAgo string) (*Stats, error)
}

type salonRepo struct {
	db *gorm.DB
}

func (r *salonRepo) Create(ctx context.Context, salon *model.Salon) error {
	if err := r.db.WithContext(ctx).Create(salon).Error; err != nil {
		return fmt.Errorf("create salon: %w", err)
	}
	return nil
}

func (r *salonRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Salon, error) {
	var salon model.Salon
	if err := r.db.WithContext(ctx).First(&salon, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &salon, nil
}

func (r *salonRepo) GetByEmail(ctx context.Context, email string) (*model.Salon, error) {
	var salon model.Salon
	if err := r.db.WithContext(ctx).First(&salon, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &salon, nil
}

func (r *salonRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Salon{}).
		Where("email = ?", email).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count salons by email: %w", err)
	}
	return n > 0, nil
}

func (r *salonRepo) Update(ctx context.Context, salon *model.Salon) error {
	if err := r.db.WithContext(ctx).Save(salon).Error; err != nil {
		return fmt.Errorf("update salon: %w", err)
	}
	return nil
}

func (r *salonRepo) Stats(ctx context.Context, salonID uuid.UUID, today, weekAgo string) (*Stats, error) {
	db := r.db.WithContext(ctx)
	var s Stats

	if err := db.Model(&model.Appointment{}).
		Where("salon_id = ? AND date = ?", salonID, today).
		Count(&s.TodayAppointments).Error; err != nil {
		return nil, fmt.Errorf("count today appointments: %w", err)
	}

	if err := db.Model(&model.Appointment{}).
		Where("salon_id = ? AND date >= ?", salonID, weekAgo).
		Count(&s.WeekAppointments).Error; err != nil {
		return nil, fmt.Errorf("count week appointments: %w", err)
	}

	if err := db.Model(&model.Appointment{}).
		Where("salon_id = ? AND date >= ? AND status = ?", salonID, weekAgo, model.StatusCompleted).
		Select("COALESCE(SUM(price), 0)").
		Scan(&s.WeekRevenue).Error; err != nil {
		return nil, fmt.Errorf("sum week revenue: %w", err)
	}

	if err := db.Model(&model.Client{}).
		Where("salon_id = ?", salonID).
		Count(&s.TotalClients).Error; err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	return &s, nil
}

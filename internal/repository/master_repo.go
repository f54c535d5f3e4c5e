package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
)

type MasterRepository interface {
	List(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Master, error)
	GetByID(ctx context.Context, salonID, id uuid.UUID) (*model.Master, error)
	Create(ctx context.Context, master *model.Master) error
	Update(ctx context.Context, master *model.Master) error
	Delete(ctx context.Context, salonID, id uuid.UUID) error
	SetServices(ctx context.Context, master *model.Master, services []model.Service) error
	OffersService(ctx context.Context, masterID, serviceID uuid.UUID) (bool, error)
}

type masterRepo struct {
	db *gorm.DB
}

func (r *masterRepo) List(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Master, error) {
	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var masters []model.Master
	if err := q.Order("name").Find(&masters).Error; err != nil {
		return nil, fmt.Errorf("list masters: %w", err)
	}
	return masters, nil
}

func (r *masterRepo) GetByID(ctx context.Context, salonID, id uuid.UUID) (*model.Master, error) {
	var master model.Master
	err := r.db.WithContext(ctx).
		Preload("Services").
		First(&master, "id = ? AND salon_id = ?", id, salonID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &master, nil
}

func (r *masterRepo) Create(ctx context.Context, master *model.Master) error {
	if err := r.db.WithContext(ctx).Create(master).Error; err != nil {
		return fmt.Errorf("create master: %w", err)
	}
	return nil
}

func (r *masterRepo) Update(ctx context.Context, master *model.Master) error {
	if err := r.db.WithContext(ctx).Omit("Services").Save(master).Error; err != nil {
		return fmt.Errorf("update master: %w", err)
	}
	return nil
}

func (r *masterRepo) Delete(ctx context.Context, salonID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&model.Master{})
	if res.Error != nil {
		return fmt.Errorf("delete master: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *masterRepo) SetServices(ctx context.Context, master *model.Master, services []model.Service) error {
	if err := r.db.WithContext(ctx).Model(master).
		Association("Services").Replace(services); err != nil {
		return fmt.Errorf("set master services: %w", err)
	}
	return nil
}

func (r *masterRepo) OffersService(ctx context.Context, masterID, serviceID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("master_services").
		Where("master_id = ? AND service_id = ?", masterID, serviceID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check master service: %w", err)
	}
	return n > 0, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
)

type ServiceRepository interface {
	List(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Service, error)
	GetByID(ctx context.Context, salonID, id uuid.UUID) (*model.Service, error)
	GetByIDs(ctx context.Context, salonID uuid.UUID, ids []uuid.UUID) ([]model.Service, error)
	Create(ctx context.Context, service *model.Service) error
	Update(ctx context.Context, service *model.Service) error
	Delete(ctx context.Context, salonID, id uuid.UUID) error
}

type serviceRepo struct {
	db *gorm.DB
}

func (r *serviceRepo) List(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Service, error) {
	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var services []model.Service
	if err := q.Order("category, name").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepo) GetByID(ctx context.Context, salonID, id uuid.UUID) (*model.Service, error) {
	var service model.Service
	err := r.db.WithContext(ctx).
		First(&service, "id = ? AND salon_id = ?", id, salonID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *serviceRepo) GetByIDs(ctx context.Context, salonID uuid.UUID, ids []uuid.UUID) ([]model.Service, error) {
	var services []model.Service
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND id IN ?", salonID, ids).
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("get services by ids: %w", err)
	}
	return services, nil
}

func (r *serviceRepo) Create(ctx context.Context, service *model.Service) error {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *serviceRepo) Update(ctx context.Context, service *model.Service) error {
	if err := r.db.WithContext(ctx).Save(service).Error; err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (r *serviceRepo) Delete(ctx context.Context, salonID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&model.Service{})
	if res.Error != nil {
		return fmt.Errorf("delete service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

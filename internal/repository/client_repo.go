package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
)

type ClientRepository interface {
	List(ctx context.Context, salonID uuid.UUID, search string) ([]model.Client, error)
	GetByID(ctx context.Context, salonID, id uuid.UUID) (*model.Client, error)
	GetByPhone(ctx context.Context, salonID uuid.UUID, phone string) (*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, salonID, id uuid.UUID) error
}

type clientRepo struct {
	db *gorm.DB
}

func (r *clientRepo) List(ctx context.Context, salonID uuid.UUID, search string) ([]model.Client, error) {
	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}
	var clients []model.Client
	if err := q.Order("name").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepo) GetByID(ctx context.Context, salonID, id uuid.UUID) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).
		First(&client, "id = ? AND salon_id = ?", id, salonID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *clientRepo) GetByPhone(ctx context.Context, salonID uuid.UUID, phone string) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).
		First(&client, "salon_id = ? AND phone = ?", salonID, phone).Error
	if err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *clientRepo) Update(ctx context.Context, client *model.Client) error {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, salonID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&model.Client{})
	if res.Error != nil {
		return fmt.Errorf("delete client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

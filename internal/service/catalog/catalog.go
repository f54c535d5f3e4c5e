// Package catalog manages the bookable inventory of a salon: the masters
// who perform work and the services they offer. Scheduling reads this
// catalog but never writes it.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/repository"
	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateMasterRequest struct {
	Name         string
	Phone        string
	Email        string
	Description  string
	Specialties  []string
	WorkSchedule *schedule.Week
	ServiceIDs   []uuid.UUID
}

type UpdateMasterRequest struct {
	Name         *string
	Phone        *string
	Email        *string
	Description  *string
	Specialties  []string
	WorkSchedule *schedule.Week
	IsActive     *bool
}

type CreateServiceRequest struct {
	Name        string
	Description string
	DurationMin int
	Price       int64
	Category    string
}

type UpdateServiceRequest struct {
	Name        *string
	Description *string
	DurationMin *int
	Price       *int64
	Category    *string
	IsActive    *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Masters
	ListMasters(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Master, error)
	GetMaster(ctx context.Context, salonID, id uuid.UUID) (*model.Master, error)
	CreateMaster(ctx context.Context, salonID uuid.UUID, req CreateMasterRequest) (*model.Master, error)
	UpdateMaster(ctx context.Context, salonID, id uuid.UUID, req UpdateMasterRequest) (*model.Master, error)
	DeleteMaster(ctx context.Context, salonID, id uuid.UUID) error
	SetMasterServices(ctx context.Context, salonID, id uuid.UUID, serviceIDs []uuid.UUID) (*model.Master, error)

	// Services
	ListServices(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Service, error)
	GetService(ctx context.Context, salonID, id uuid.UUID) (*model.Service, error)
	CreateService(ctx context.Context, salonID uuid.UUID, req CreateServiceRequest) (*model.Service, error)
	UpdateService(ctx context.Context, salonID, id uuid.UUID, req UpdateServiceRequest) (*model.Service, error)
	DeleteService(ctx context.Context, salonID, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type catalogService struct {
	masters  repository.MasterRepository
	services repository.ServiceRepository
}

func New(masters repository.MasterRepository, services repository.ServiceRepository) Service {
	return &catalogService{masters: masters, services: services}
}

// ---------------------------------------------------------------------------
// Masters
// ---------------------------------------------------------------------------

func (s *catalogService) ListMasters(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Master, error) {
	return s.masters.List(ctx, salonID, activeOnly)
}

func (s *catalogService) GetMaster(ctx context.Context, salonID, id uuid.UUID) (*model.Master, error) {
	master, err := s.masters.GetByID(ctx, salonID, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrMasterNotFound
		}
		return nil, fmt.Errorf("get master: %w", err)
	}
	return master, nil
}

func (s *catalogService) CreateMaster(ctx context.Context, salonID uuid.UUID, req CreateMasterRequest) (*model.Master, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	master := &model.Master{
		SalonID:     salonID,
		Name:        req.Name,
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		Description: req.Description,
		Specialties: req.Specialties,
		IsActive:    true,
	}
	if req.WorkSchedule != nil {
		if err := req.WorkSchedule.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		master.WorkSchedule = *req.WorkSchedule
	} else {
		master.WorkSchedule = schedule.DefaultSalonWeek()
	}

	if err := s.masters.Create(ctx, master); err != nil {
		return nil, fmt.Errorf("create master: %w", err)
	}

	if len(req.ServiceIDs) > 0 {
		return s.SetMasterServices(ctx, salonID, master.ID, req.ServiceIDs)
	}
	return master, nil
}

func (s *catalogService) UpdateMaster(ctx context.Context, salonID, id uuid.UUID, req UpdateMasterRequest) (*model.Master, error) {
	master, err := s.GetMaster(ctx, salonID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		master.Name = name
	}
	if req.Phone != nil {
		master.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		master.Email = strings.TrimSpace(*req.Email)
	}
	if req.Description != nil {
		master.Description = *req.Description
	}
	if req.Specialties != nil {
		master.Specialties = req.Specialties
	}
	if req.WorkSchedule != nil {
		if err := req.WorkSchedule.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		master.WorkSchedule = *req.WorkSchedule
	}
	if req.IsActive != nil {
		master.IsActive = *req.IsActive
	}

	if err := s.masters.Update(ctx, master); err != nil {
		return nil, fmt.Errorf("update master: %w", err)
	}
	return master, nil
}

func (s *catalogService) DeleteMaster(ctx context.Context, salonID, id uuid.UUID) error {
	if err := s.masters.Delete(ctx, salonID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrMasterNotFound
		}
		return fmt.Errorf("delete master: %w", err)
	}
	return nil
}

func (s *catalogService) SetMasterServices(ctx context.Context, salonID, id uuid.UUID, serviceIDs []uuid.UUID) (*model.Master, error) {
	master, err := s.GetMaster(ctx, salonID, id)
	if err != nil {
		return nil, err
	}

	services, err := s.services.GetByIDs(ctx, salonID, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve services: %w", err)
	}
	// Every requested id must resolve within the salon scope.
	if len(services) != len(dedupe(serviceIDs)) {
		return nil, ErrUnknownServiceID
	}

	if err := s.masters.SetServices(ctx, master, services); err != nil {
		return nil, fmt.Errorf("set services: %w", err)
	}
	master.Services = services
	return master, nil
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

func (s *catalogService) ListServices(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Service, error) {
	return s.services.List(ctx, salonID, activeOnly)
}

func (s *catalogService) GetService(ctx context.Context, salonID, id uuid.UUID) (*model.Service, error) {
	service, err := s.services.GetByID(ctx, salonID, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return service, nil
}

func (s *catalogService) CreateService(ctx context.Context, salonID uuid.UUID, req CreateServiceRequest) (*model.Service, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "other"
	}

	service := &model.Service{
		SalonID:     salonID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    category,
		IsActive:    true,
	}
	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return service, nil
}

func (s *catalogService) UpdateService(ctx context.Context, salonID, id uuid.UUID, req UpdateServiceRequest) (*model.Service, error) {
	service, err := s.GetService(ctx, salonID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		service.Name = name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			return nil, ErrInvalidDuration
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		service.Price = *req.Price
	}
	if req.Category != nil {
		service.Category = strings.TrimSpace(*req.Category)
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return service, nil
}

func (s *catalogService) DeleteService(ctx context.Context, salonID, id uuid.UUID) error {
	if err := s.services.Delete(ctx, salonID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrServiceNotFound
		}
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

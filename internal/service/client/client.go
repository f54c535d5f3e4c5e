// Package client manages the salon's customer records. Phone numbers are
// normalized to E.164 before any write or lookup so the same person never
// appears twice under two formattings of one number.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/repository"
	"github.com/Alijeyrad/glowdesk_backend/pkg/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name     string
	Phone    string
	Email    string
	Birthday *time.Time
	Notes    string
}

type UpdateRequest struct {
	Name     *string
	Phone    *string
	Email    *string
	Birthday *time.Time
	Notes    *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, salonID uuid.UUID, search string) ([]model.Client, error)
	Get(ctx context.Context, salonID, id uuid.UUID) (*model.Client, error)
	Create(ctx context.Context, salonID uuid.UUID, req CreateRequest) (*model.Client, error)
	Update(ctx context.Context, salonID, id uuid.UUID, req UpdateRequest) (*model.Client, error)
	Delete(ctx context.Context, salonID, id uuid.UUID) error

	// FindOrCreateByPhone backs public booking: it resolves the phone to
	// an existing client or creates a minimal record on the fly.
	FindOrCreateByPhone(ctx context.Context, salonID uuid.UUID, name, rawPhone string) (*model.Client, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clientService struct {
	clients repository.ClientRepository
	phones  *phone.Normalizer
}

func New(clients repository.ClientRepository, phones *phone.Normalizer) Service {
	return &clientService{clients: clients, phones: phones}
}

func (s *clientService) List(ctx context.Context, salonID uuid.UUID, search string) ([]model.Client, error) {
	return s.clients.List(ctx, salonID, strings.TrimSpace(search))
}

func (s *clientService) Get(ctx context.Context, salonID, id uuid.UUID) (*model.Client, error) {
	c, err := s.clients.GetByID(ctx, salonID, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *clientService) Create(ctx context.Context, salonID uuid.UUID, req CreateRequest) (*model.Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	normalized, err := s.phones.Normalize(req.Phone)
	if err != nil {
		return nil, ErrInvalidPhone
	}

	if _, err := s.clients.GetByPhone(ctx, salonID, normalized); err == nil {
		return nil, ErrPhoneTaken
	} else if err != repository.ErrNotFound {
		return nil, fmt.Errorf("check phone: %w", err)
	}

	c := &model.Client{
		SalonID:  salonID,
		Name:     req.Name,
		Phone:    normalized,
		Email:    strings.TrimSpace(req.Email),
		Birthday: req.Birthday,
		Notes:    req.Notes,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}

func (s *clientService) Update(ctx context.Context, salonID, id uuid.UUID, req UpdateRequest) (*model.Client, error) {
	c, err := s.Get(ctx, salonID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		c.Name = name
	}
	if req.Phone != nil {
		normalized, err := s.phones.Normalize(*req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		if normalized != c.Phone {
			if other, err := s.clients.GetByPhone(ctx, salonID, normalized); err == nil && other.ID != c.ID {
				return nil, ErrPhoneTaken
			} else if err != nil && err != repository.ErrNotFound {
				return nil, fmt.Errorf("check phone: %w", err)
			}
			c.Phone = normalized
		}
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Birthday != nil {
		c.Birthday = req.Birthday
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

func (s *clientService) Delete(ctx context.Context, salonID, id uuid.UUID) error {
	if err := s.clients.Delete(ctx, salonID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrClientNotFound
		}
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (s *clientService) FindOrCreateByPhone(ctx context.Context, salonID uuid.UUID, name, rawPhone string) (*model.Client, error) {
	normalized, err := s.phones.Normalize(rawPhone)
	if err != nil {
		return nil, ErrInvalidPhone
	}

	c, err := s.clients.GetByPhone(ctx, salonID, normalized)
	if err == nil {
		return c, nil
	}
	if err != repository.ErrNotFound {
		return nil, fmt.Errorf("lookup by phone: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	c = &model.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   normalized,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}

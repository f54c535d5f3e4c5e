package salon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/repository"
	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
)

const statsCacheTTL = 5 * time.Minute

// redisKeyStats returns the Redis key for a salon's cached dashboard stats.
func redisKeyStats(salonID uuid.UUID) string { return "stats:" + salonID.String() }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateInfoRequest struct {
	Name      *string
	Address   *string
	Phone     *string
	WorkHours *schedule.Week
}

type UpdateSettingsRequest struct {
	SlotDurationMin    *int
	AdvanceBookingDays *int
	CancellationHours  *int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Info(ctx context.Context, salonID uuid.UUID) (*model.Salon, error)
	UpdateInfo(ctx context.Context, salonID uuid.UUID, req UpdateInfoRequest) (*model.Salon, error)
	Settings(ctx context.Context, salonID uuid.UUID) (*model.Settings, error)
	UpdateSettings(ctx context.Context, salonID uuid.UUID, req UpdateSettingsRequest) (*model.Settings, error)

	// Stats serves the dashboard summary, cached in Redis for a few
	// minutes. InvalidateStats drops the cache; the appointment event
	// worker calls it on every lifecycle event.
	Stats(ctx context.Context, salonID uuid.UUID, now time.Time) (*repository.Stats, error)
	InvalidateStats(ctx context.Context, salonID uuid.UUID)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type salonService struct {
	salons repository.SalonRepository
	rdb    *redis.Client
}

func New(salons repository.SalonRepository, rdb *redis.Client) Service {
	return &salonService{salons: salons, rdb: rdb}
}

func (s *salonService) Info(ctx context.Context, salonID uuid.UUID) (*model.Salon, error) {
	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("get salon: %w", err)
	}
	return salon, nil
}

func (s *salonService) UpdateInfo(ctx context.Context, salonID uuid.UUID, req UpdateInfoRequest) (*model.Salon, error) {
	salon, err := s.Info(ctx, salonID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != "" {
			salon.Name = name
		}
	}
	if req.Address != nil {
		salon.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		salon.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.WorkHours != nil {
		if err := req.WorkHours.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		salon.WorkHours = *req.WorkHours
	}

	if err := s.salons.Update(ctx, salon); err != nil {
		return nil, fmt.Errorf("update salon: %w", err)
	}
	return salon, nil
}

func (s *salonService) Settings(ctx context.Context, salonID uuid.UUID) (*model.Settings, error) {
	salon, err := s.Info(ctx, salonID)
	if err != nil {
		return nil, err
	}
	return &salon.Settings, nil
}

func (s *salonService) UpdateSettings(ctx context.Context, salonID uuid.UUID, req UpdateSettingsRequest) (*model.Settings, error) {
	salon, err := s.Info(ctx, salonID)
	if err != nil {
		return nil, err
	}

	next := salon.Settings
	if req.SlotDurationMin != nil {
		next.SlotDurationMin = *req.SlotDurationMin
	}
	if req.AdvanceBookingDays != nil {
		next.AdvanceBookingDays = *req.AdvanceBookingDays
	}
	if req.CancellationHours != nil {
		next.CancellationHours = *req.CancellationHours
	}
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	salon.Settings = next
	if err := s.salons.Update(ctx, salon); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return &salon.Settings, nil
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

func (s *salonService) Stats(ctx context.Context, salonID uuid.UUID, now time.Time) (*repository.Stats, error) {
	key := redisKeyStats(salonID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var stats repository.Stats
			if json.Unmarshal(cached, &stats) == nil {
				return &stats, nil
			}
		}
	}

	today := now.Format(model.DateLayout)
	weekAgo := now.AddDate(0, 0, -6).Format(model.DateLayout)

	stats, err := s.salons.Stats(ctx, salonID, today, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	if s.rdb != nil {
		if b, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, key, b, statsCacheTTL).Err(); err != nil {
				slog.Debug("stats cache write failed", "salon_id", salonID, "err", err)
			}
		}
	}

	return stats, nil
}

func (s *salonService) InvalidateStats(ctx context.Context, salonID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, redisKeyStats(salonID)).Err(); err != nil {
		slog.Debug("stats cache invalidation failed", "salon_id", salonID, "err", err)
	}
}

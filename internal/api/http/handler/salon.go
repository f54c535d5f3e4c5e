package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/salon"
)

type SalonHandler struct {
	svc salon.Service
}

func NewSalonHandler(svc salon.Service) *SalonHandler {
	return &SalonHandler{svc: svc}
}

func mapSalonError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, salon.ErrSalonNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, salon.ErrInvalidSettings),
		errors.Is(err, salon.ErrInvalidSchedule):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /salon/info
func (h *SalonHandler) Info(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	s, err := h.svc.Info(c.Context(), salonID)
	if err != nil {
		return mapSalonError(c, err)
	}
	return ok(c, s)
}

// PATCH /salon/info
func (h *SalonHandler) UpdateInfo(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name      *string        `json:"name"`
		Address   *string        `json:"address"`
		Phone     *string        `json:"phone"`
		WorkHours *schedule.Week `json:"work_hours"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	s, err := h.svc.UpdateInfo(c.Context(), salonID, salon.UpdateInfoRequest{
		Name:      body.Name,
		Address:   body.Address,
		Phone:     body.Phone,
		WorkHours: body.WorkHours,
	})
	if err != nil {
		return mapSalonError(c, err)
	}
	return ok(c, s)
}

// GET /salon/settings
func (h *SalonHandler) Settings(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	settings, err := h.svc.Settings(c.Context(), salonID)
	if err != nil {
		return mapSalonError(c, err)
	}
	return ok(c, settings)
}

// PATCH /salon/settings
func (h *SalonHandler) UpdateSettings(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		SlotDuration       *int `json:"slot_duration"`
		AdvanceBookingDays *int `json:"advance_booking_days"`
		CancellationHours  *int `json:"cancellation_hours"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	settings, err := h.svc.UpdateSettings(c.Context(), salonID, salon.UpdateSettingsRequest{
		SlotDurationMin:    body.SlotDuration,
		AdvanceBookingDays: body.AdvanceBookingDays,
		CancellationHours:  body.CancellationHours,
	})
	if err != nil {
		return mapSalonError(c, err)
	}
	return ok(c, settings)
}

// GET /salon/stats
func (h *SalonHandler) Stats(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	stats, err := h.svc.Stats(c.Context(), salonID, time.Now())
	if err != nil {
		return mapSalonError(c, err)
	}
	return ok(c, stats)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/catalog"
)

type MasterHandler struct {
	svc catalog.Service
}

func NewMasterHandler(svc catalog.Service) *MasterHandler {
	return &MasterHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrMasterNotFound),
		errors.Is(err, catalog.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, catalog.ErrInvalidDuration),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidSchedule),
		errors.Is(err, catalog.ErrUnknownServiceID):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /masters
func (h *MasterHandler) List(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	activeOnly := fiber.Query[bool](c, "active_only")
	masters, err := h.svc.ListMasters(c.Context(), salonID, activeOnly)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, masters)
}

// GET /masters/:id
func (h *MasterHandler) Get(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid master id")
	}

	master, err := h.svc.GetMaster(c.Context(), salonID, id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, master)
}

type masterBody struct {
	Name         *string        `json:"name"`
	Phone        *string        `json:"phone"`
	Email        *string        `json:"email"`
	Description  *string        `json:"description"`
	Specialties  []string       `json:"specialties"`
	WorkSchedule *schedule.Week `json:"work_schedule"`
	ServiceIDs   []uuid.UUID    `json:"service_ids"`
	IsActive     *bool          `json:"is_active"`
}

// POST /masters
func (h *MasterHandler) Create(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body masterBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := catalog.CreateMasterRequest{
		Specialties:  body.Specialties,
		WorkSchedule: body.WorkSchedule,
		ServiceIDs:   body.ServiceIDs,
	}
	if body.Name != nil {
		req.Name = *body.Name
	}
	if body.Phone != nil {
		req.Phone = *body.Phone
	}
	if body.Email != nil {
		req.Email = *body.Email
	}
	if body.Description != nil {
		req.Description = *body.Description
	}

	master, err := h.svc.CreateMaster(c.Context(), salonID, req)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, master)
}

// PATCH /masters/:id
func (h *MasterHandler) Update(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid master id")
	}

	var body masterBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	master, err := h.svc.UpdateMaster(c.Context(), salonID, id, catalog.UpdateMasterRequest{
		Name:         body.Name,
		Phone:        body.Phone,
		Email:        body.Email,
		Description:  body.Description,
		Specialties:  body.Specialties,
		WorkSchedule: body.WorkSchedule,
		IsActive:     body.IsActive,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, master)
}

// DELETE /masters/:id
func (h *MasterHandler) Delete(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid master id")
	}

	if err := h.svc.DeleteMaster(c.Context(), salonID, id); err != nil {
		return mapCatalogError(c, err)
	}
	return noContent(c)
}

// PUT /masters/:id/services
func (h *MasterHandler) SetServices(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid master id")
	}

	var body struct {
		ServiceIDs []uuid.UUID `json:"service_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	master, err := h.svc.SetMasterServices(c.Context(), salonID, id, body.ServiceIDs)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, master)
}

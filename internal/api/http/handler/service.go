package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glowdesk_backend/internal/service/catalog"
)

type ServiceHandler struct {
	svc catalog.Service
}

func NewServiceHandler(svc catalog.Service) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// GET /services
func (h *ServiceHandler) List(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	activeOnly := fiber.Query[bool](c, "active_only")
	services, err := h.svc.ListServices(c.Context(), salonID, activeOnly)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, services)
}

// GET /services/:id
func (h *ServiceHandler) Get(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid service id")
	}

	service, err := h.svc.GetService(c.Context(), salonID, id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, service)
}

type serviceBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DurationMin *int    `json:"duration_min"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"is_active"`
}

// POST /services
func (h *ServiceHandler) Create(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body serviceBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := catalog.CreateServiceRequest{}
	if body.Name != nil {
		req.Name = *body.Name
	}
	if body.Description != nil {
		req.Description = *body.Description
	}
	if body.DurationMin != nil {
		req.DurationMin = *body.DurationMin
	}
	if body.Price != nil {
		req.Price = *body.Price
	}
	if body.Category != nil {
		req.Category = *body.Category
	}

	service, err := h.svc.CreateService(c.Context(), salonID, req)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return created(c, service)
}

// PATCH /services/:id
func (h *ServiceHandler) Update(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid service id")
	}

	var body serviceBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	service, err := h.svc.UpdateService(c.Context(), salonID, id, catalog.UpdateServiceRequest{
		Name:        body.Name,
		Description: body.Description,
		DurationMin: body.DurationMin,
		Price:       body.Price,
		Category:    body.Category,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, service)
}

// DELETE /services/:id
func (h *ServiceHandler) Delete(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid service id")
	}

	if err := h.svc.DeleteService(c.Context(), salonID, id); err != nil {
		return mapCatalogError(c, err)
	}
	return noContent(c)
}

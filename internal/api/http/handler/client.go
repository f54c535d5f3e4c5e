package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	clientsvc "github.com/Alijeyrad/glowdesk_backend/internal/service/client"
)

type ClientHandler struct {
	svc clientsvc.Service
}

func NewClientHandler(svc clientsvc.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func mapClientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clientsvc.ErrClientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clientsvc.ErrNameRequired),
		errors.Is(err, clientsvc.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, clientsvc.ErrPhoneTaken):
		return conflict(c, CodeValidationError, err.Error())
	default:
		return internalError(c)
	}
}

// GET /clients
func (h *ClientHandler) List(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	clients, err := h.svc.List(c.Context(), salonID, fiber.Query[string](c, "search"))
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, clients)
}

// GET /clients/:id
func (h *ClientHandler) Get(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid client id")
	}

	client, err := h.svc.Get(c.Context(), salonID, id)
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, client)
}

type clientBody struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Birthday *string `json:"birthday"`
	Notes    *string `json:"notes"`
}

func (b clientBody) birthday() (*time.Time, error) {
	if b.Birthday == nil || *b.Birthday == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateLayout, *b.Birthday)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// POST /clients
func (h *ClientHandler) Create(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body clientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	birthday, err := body.birthday()
	if err != nil {
		return badRequest(c, "birthday must be formatted as YYYY-MM-DD")
	}

	req := clientsvc.CreateRequest{Birthday: birthday}
	if body.Name != nil {
		req.Name = *body.Name
	}
	if body.Phone != nil {
		req.Phone = *body.Phone
	}
	if body.Email != nil {
		req.Email = *body.Email
	}
	if body.Notes != nil {
		req.Notes = *body.Notes
	}

	client, err := h.svc.Create(c.Context(), salonID, req)
	if err != nil {
		return mapClientError(c, err)
	}
	return created(c, client)
}

// PATCH /clients/:id
func (h *ClientHandler) Update(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid client id")
	}

	var body clientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	birthday, err := body.birthday()
	if err != nil {
		return badRequest(c, "birthday must be formatted as YYYY-MM-DD")
	}

	client, err := h.svc.Update(c.Context(), salonID, id, clientsvc.UpdateRequest{
		Name:     body.Name,
		Phone:    body.Phone,
		Email:    body.Email,
		Birthday: birthday,
		Notes:    body.Notes,
	})
	if err != nil {
		return mapClientError(c, err)
	}
	return ok(c, client)
}

// DELETE /clients/:id
func (h *ClientHandler) Delete(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid client id")
	}

	if err := h.svc.Delete(c.Context(), salonID, id); err != nil {
		return mapClientError(c, err)
	}
	return noContent(c)
}

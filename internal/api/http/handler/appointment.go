package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/repository"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/booking"
)

type AppointmentHandler struct {
	svc booking.Service
}

func NewAppointmentHandler(svc booking.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrSalonNotFound),
		errors.Is(err, booking.ErrMasterNotFound),
		errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrClientNotFound),
		errors.Is(err, booking.ErrApptNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidStart),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidPrice),
		errors.Is(err, booking.ErrMasterInactive),
		errors.Is(err, booking.ErrServiceInactive),
		errors.Is(err, booking.ErrServiceNotOffered):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrOutOfHours):
		return unprocessable(c, CodeOutOfHours, err.Error())
	case errors.Is(err, booking.ErrOutsideWindow):
		return unprocessable(c, CodeOutsideWindow, err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		return conflict(c, CodeSlotTaken, err.Error())
	case errors.Is(err, booking.ErrIllegalTransition):
		return conflict(c, CodeIllegalTransition, err.Error())
	case errors.Is(err, booking.ErrUnavailable):
		return serviceUnavailable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /availability?master_id=&service_id=&date=
func (h *AppointmentHandler) Availability(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	masterID, err := uuid.Parse(fiber.Query[string](c, "master_id"))
	if err != nil {
		return badRequest(c, "invalid master_id")
	}
	serviceID, err := uuid.Parse(fiber.Query[string](c, "service_id"))
	if err != nil {
		return badRequest(c, "invalid service_id")
	}
	date := fiber.Query[string](c, "date")

	slots, err := h.svc.FreeSlots(c.Context(), salonID, masterID, serviceID, date)
	if err != nil {
		return mapBookingError(c, err)
	}
	return okWith(c, fiber.Map{"date": date, "slots": slots})
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	f := repository.ListFilter{
		Page:    fiber.Query[int](c, "page", 1),
		PerPage: fiber.Query[int](c, "per_page", 50),
	}
	if v := fiber.Query[string](c, "master_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid master_id")
		}
		f.MasterID = &id
	}
	if v := fiber.Query[string](c, "client_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		f.ClientID = &id
	}
	if v := fiber.Query[string](c, "status"); v != "" {
		st := model.Status(v)
		if !st.Valid() {
			return badRequest(c, "invalid status")
		}
		f.Status = &st
	}
	if v := fiber.Query[string](c, "from"); v != "" {
		f.From = &v
	}
	if v := fiber.Query[string](c, "to"); v != "" {
		f.To = &v
	}

	appts, err := h.svc.List(c.Context(), salonID, f)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Get(c.Context(), salonID, id)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, appt)
}

type bookBody struct {
	MasterID  uuid.UUID `json:"master_id"`
	ServiceID uuid.UUID `json:"service_id"`
	ClientID  uuid.UUID `json:"client_id"`
	Date      string    `json:"date"`
	Start     string    `json:"start"`
	Notes     string    `json:"notes"`
	Price     *int64    `json:"price"`
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body bookBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Book(c.Context(), salonID, booking.BookRequest{
		MasterID:  body.MasterID,
		ServiceID: body.ServiceID,
		ClientID:  body.ClientID,
		Date:      body.Date,
		Start:     body.Start,
		Notes:     body.Notes,
		Price:     body.Price,
	})
	if err != nil {
		return mapBookingError(c, err)
	}
	return createdWith(c, fiber.Map{"appointment_id": appt.ID, "appointment": appt})
}

// PATCH /appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c fiber.Ctx) error {
	salonID, valid := salonIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := parseIDParam(c, "id")
	if !valid {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Transition(c.Context(), salonID, id, model.Status(body.Status))
	if err != nil {
		return mapBookingError(c, err)
	}
	return okWith(c, fiber.Map{
		"appointment":       res.Appointment,
		"late_cancellation": res.LateCancellation,
	})
}

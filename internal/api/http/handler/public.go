package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/booking"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/catalog"
	clientsvc "github.com/Alijeyrad/glowdesk_backend/internal/service/client"
	salonsvc "github.com/Alijeyrad/glowdesk_backend/internal/service/salon"
)

// PublicHandler serves the unauthenticated booking pages. Everything it
// returns is filtered down to what a walk-in visitor may see.
type PublicHandler struct {
	salons  salonsvc.Service
	catalog catalog.Service
	clients clientsvc.Service
	booking booking.Service
}

func NewPublicHandler(
	salons salonsvc.Service,
	cat catalog.Service,
	clients clientsvc.Service,
	bk booking.Service,
) *PublicHandler {
	return &PublicHandler{salons: salons, catalog: cat, clients: clients, booking: bk}
}

// ---------------------------------------------------------------------------
// Public views
// ---------------------------------------------------------------------------

type publicSalon struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	Phone     string        `json:"phone"`
	WorkHours schedule.Week `json:"work_hours"`
}

type publicMaster struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Specialties []string  `json:"specialties"`
}

type publicService struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DurationMin int       `json:"duration_min"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
}

func toPublicMaster(m model.Master) publicMaster {
	return publicMaster{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Specialties: m.Specialties,
	}
}

func toPublicService(s model.Service) publicService {
	return publicService{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		DurationMin: s.DurationMin,
		Price:       s.Price,
		Category:    s.Category,
	}
}

func salonIDFromParam(c fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("salonID"))
	return id, err == nil
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// GET /public/salons/:salonID
func (h *PublicHandler) Info(c fiber.Ctx) error {
	salonID, valid := salonIDFromParam(c)
	if !valid {
		return badRequest(c, "invalid salon id")
	}

	salon, err := h.salons.Info(c.Context(), salonID)
	if err != nil {
		return mapSalonError(c, err)
	}
	return ok(c, publicSalon{
		ID:        salon.ID,
		Name:      salon.Name,
		Address:   salon.Address,
		Phone:     salon.Phone,
		WorkHours: salon.WorkHours,
	})
}

// GET /public/salons/:salonID/masters
func (h *PublicHandler) Masters(c fiber.Ctx) error {
	salonID, valid := salonIDFromParam(c)
	if !valid {
		return badRequest(c, "invalid salon id")
	}

	masters, err := h.catalog.ListMasters(c.Context(), salonID, true)
	if err != nil {
		return mapCatalogError(c, err)
	}
	out := make([]publicMaster, 0, len(masters))
	for _, m := range masters {
		out = append(out, toPublicMaster(m))
	}
	return ok(c, out)
}

// GET /public/salons/:salonID/services
func (h *PublicHandler) Services(c fiber.Ctx) error {
	salonID, valid := salonIDFromParam(c)
	if !valid {
		return badRequest(c, "invalid salon id")
	}

	services, err := h.catalog.ListServices(c.Context(), salonID, true)
	if err != nil {
		return mapCatalogError(c, err)
	}
	out := make([]publicService, 0, len(services))
	for _, s := range services {
		out = append(out, toPublicService(s))
	}
	return ok(c, out)
}

// GET /public/salons/:salonID/availability?master_id=&service_id=&date=
func (h *PublicHandler) Availability(c fiber.Ctx) error {
	salonID, valid := salonIDFromParam(c)
	if !valid {
		return badRequest(c, "invalid salon id")
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

	slots, err := h.booking.FreeSlots(c.Context(), salonID, masterID, serviceID, date)
	if err != nil {
		return mapBookingError(c, err)
	}
	return okWith(c, fiber.Map{"date": date, "slots": slots})
}

type publicBookBody struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	MasterID  uuid.UUID `json:"master_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Date      string    `json:"date"`
	Start     string    `json:"start"`
	Notes     string    `json:"notes"`
}

// POST /public/salons/:salonID/book
func (h *PublicHandler) Book(c fiber.Ctx) error {
	salonID, valid := salonIDFromParam(c)
	if !valid {
		return badRequest(c, "invalid salon id")
	}

	var body publicBookBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	client, err := h.clients.FindOrCreateByPhone(c.Context(), salonID, body.Name, body.Phone)
	if err != nil {
		return mapClientError(c, err)
	}

	appt, err := h.booking.Book(c.Context(), salonID, booking.BookRequest{
		MasterID:  body.MasterID,
		ServiceID: body.ServiceID,
		ClientID:  client.ID,
		Date:      body.Date,
		Start:     body.Start,
		Notes:     body.Notes,
		Public:    true,
	})
	if err != nil {
		return mapBookingError(c, err)
	}
	return createdWith(c, fiber.Map{
		"appointment_id": appt.ID,
		"date":           appt.Date,
		"start":          appt.StartTime,
		"end":            appt.EndTime,
	})
}

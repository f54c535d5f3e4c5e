package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glowdesk_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
) {
	api.Get("/availability", authRequired, ah.Availability)

	appointments := api.Group("/appointments", authRequired)

	appointments.Get("/", ah.List)
	appointments.Post("/", ah.Create)
	appointments.Get("/:id", ah.Get)
	appointments.Patch("/:id/status", ah.UpdateStatus)
}

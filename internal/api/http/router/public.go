package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glowdesk_backend/internal/api/http/handler"
)

func (r *Router) registerPublicRoutes(
	api fiber.Router,
	ph *handler.PublicHandler,
) {
	// No auth: the booking page a salon shares with its clients.
	public := api.Group("/public/salons/:salonID")

	public.Get("/", ph.Info)
	public.Get("/masters", ph.Masters)
	public.Get("/services", ph.Services)
	public.Get("/availability", ph.Availability)
	public.Post("/book", ph.Book)
}

package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glowdesk_backend/internal/api/http/handler"
)

func (r *Router) registerClientRoutes(
	api fiber.Router,
	ch *handler.ClientHandler,
	authRequired fiber.Handler,
) {
	clients := api.Group("/clients", authRequired)

	clients.Get("/", ch.List)
	clients.Post("/", ch.Create)
	clients.Get("/:id", ch.Get)
	clients.Patch("/:id", ch.Update)
	clients.Delete("/:id", ch.Delete)
}

package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glowdesk_backend/internal/api/http/handler"
)

func (r *Router) registerSalonRoutes(
	api fiber.Router,
	sh *handler.SalonHandler,
	authRequired fiber.Handler,
) {
	salon := api.Group("/salon", authRequired)

	salon.Get("/", sh.Info)
	salon.Patch("/", sh.UpdateInfo)
	salon.Get("/settings", sh.Settings)
	salon.Patch("/settings", sh.UpdateSettings)
	salon.Get("/stats", sh.Stats)
}

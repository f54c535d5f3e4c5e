package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glowdesk_backend/internal/api/http/handler"
)

func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	mh *handler.MasterHandler,
	sh *handler.ServiceHandler,
	authRequired fiber.Handler,
) {
	masters := api.Group("/masters", authRequired)

	masters.Get("/", mh.List)
	masters.Post("/", mh.Create)
	masters.Get("/:id", mh.Get)
	masters.Patch("/:id", mh.Update)
	masters.Delete("/:id", mh.Delete)
	masters.Put("/:id/services", mh.SetServices)

	services := api.Group("/services", authRequired)

	services.Get("/", sh.List)
	services.Post("/", sh.Create)
	services.Get("/:id", sh.Get)
	services.Patch("/:id", sh.Update)
	services.Delete("/:id", sh.Delete)
}

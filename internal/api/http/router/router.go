package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/glowdesk_backend/config"
	"github.com/Alijeyrad/glowdesk_backend/internal/api/http/handler"
	"github.com/Alijeyrad/glowdesk_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/auth"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/booking"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/catalog"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/client"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/salon"
	pasetotoken "github.com/Alijeyrad/glowdesk_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client
	AuthSvc    auth.Service
	SalonSvc   salon.Service
	CatalogSvc catalog.Service
	ClientSvc  client.Service
	BookingSvc booking.Service
	PasetoMgr  *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	salonH := handler.NewSalonHandler(r.p.SalonSvc)
	masterH := handler.NewMasterHandler(r.p.CatalogSvc)
	serviceH := handler.NewServiceHandler(r.p.CatalogSvc)
	clientH := handler.NewClientHandler(r.p.ClientSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.BookingSvc)
	publicH := handler.NewPublicHandler(r.p.SalonSvc, r.p.CatalogSvc, r.p.ClientSvc, r.p.BookingSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerSalonRoutes(api, salonH, authRequired)
	r.registerCatalogRoutes(api, masterH, serviceH, authRequired)
	r.registerClientRoutes(api, clientH, authRequired)
	r.registerAppointmentRoutes(api, appointmentH, authRequired)
	r.registerPublicRoutes(api, publicH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.Redis.Ping(c.Context()).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

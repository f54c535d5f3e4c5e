package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/glowdesk_backend/config"
	"github.com/Alijeyrad/glowdesk_backend/internal/repository"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/auth"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/booking"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/catalog"
	svcclient "github.com/Alijeyrad/glowdesk_backend/internal/service/client"
	"github.com/Alijeyrad/glowdesk_backend/internal/service/salon"
	"github.com/Alijeyrad/glowdesk_backend/pkg/observability"
	pasetotoken "github.com/Alijeyrad/glowdesk_backend/pkg/paseto"
	"github.com/Alijeyrad/glowdesk_backend/pkg/phone"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideSalonService,
		ProvideCatalogService,
		ProvideClientService,
		ProvideBookingService,
		ProvidePasetoManager,
		ProvidePhoneNormalizer,
		ProvideBookingMetrics,
	),
)

func ProvideAuthService(
	repo *repository.Repository,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(repo.Salon, rdb, paseto, cfg)
}

func ProvideSalonService(repo *repository.Repository, rdb *redis.Client) salon.Service {
	return salon.New(repo.Salon, rdb)
}

func ProvideCatalogService(repo *repository.Repository) catalog.Service {
	return catalog.New(repo.Master, repo.Service)
}

func ProvideClientService(repo *repository.Repository, phones *phone.Normalizer) svcclient.Service {
	return svcclient.New(repo.Client, phones)
}

func ProvideBookingService(
	repo *repository.Repository,
	nc *nats.Conn,
	metrics *observability.BookingMetrics,
) booking.Service {
	return booking.New(repo, nc, metrics)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

func ProvidePhoneNormalizer(cfg *config.Config) *phone.Normalizer {
	return phone.NewNormalizer(cfg.Phone.DefaultRegion)
}

func ProvideBookingMetrics() *observability.BookingMetrics {
	return observability.NewBookingMetrics()
}

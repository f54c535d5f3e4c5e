package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/glowdesk_backend/internal/service/salon"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	SalonSvc salon.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startStatsWorker(p.NC, p.SalonSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// stats_worker
// ---------------------------------------------------------------------------

// startStatsWorker drops the cached dashboard stats of a salon whenever any
// appointment in it changes state. Subjects carry the salon ID as the last
// token: glowdesk.appointment.<event>.<salonID>.
func startStatsWorker(nc *nats.Conn, salonSvc salon.Service) {
	_, err := nc.Subscribe("glowdesk.appointment.*.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		salonID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}

		salonSvc.InvalidateStats(context.Background(), salonID)
		slog.Debug("stats_worker: cache invalidated",
			"salon_id", salonID.String(),
			"event", parts[2],
		)
	})
	if err != nil {
		slog.Error("stats_worker: subscribe appointment events failed", "err", err)
	}

	slog.Info("stats_worker: started")
}

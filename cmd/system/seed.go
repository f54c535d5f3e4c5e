package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/glowdesk_backend/config"
	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/repository"
	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
	"github.com/Alijeyrad/glowdesk_backend/pkg/database"
	"github.com/Alijeyrad/glowdesk_backend/pkg/util/password"
)

// NewSeedCommand seeds a demo salon with one master, a couple of services
// and a client, enough to exercise the booking flow end to end.
func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a demo salon for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			db, err := database.NewFromCentral(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			}()
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			repo := repository.New(db)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			hash, err := password.HashWithParams("glowdesk-demo", password.FromCentralConfig(cfg.Password).ToParams())
			if err != nil {
				return fmt.Errorf("failed to hash demo password: %w", err)
			}

			salon := &model.Salon{
				Name:         "Demo Salon",
				Address:      "1 Main Street",
				Phone:        "+15551230000",
				Email:        "demo@glowdesk.local",
				PasswordHash: hash,
				WorkHours:    schedule.DefaultSalonWeek(),
				Settings:     model.DefaultSettings(),
			}
			if err := repo.Salon.Create(ctx, salon); err != nil {
				return fmt.Errorf("failed to create demo salon: %w", err)
			}

			haircut := &model.Service{
				SalonID:     salon.ID,
				Name:        "Haircut",
				DurationMin: 60,
				Price:       4500,
				Category:    "hair",
				IsActive:    true,
			}
			manicure := &model.Service{
				SalonID:     salon.ID,
				Name:        "Manicure",
				DurationMin: 30,
				Price:       3000,
				Category:    "nails",
				IsActive:    true,
			}
			for _, svc := range []*model.Service{haircut, manicure} {
				if err := repo.Service.Create(ctx, svc); err != nil {
					return fmt.Errorf("failed to create service %q: %w", svc.Name, err)
				}
			}

			master := &model.Master{
				SalonID:      salon.ID,
				Name:         "Anna",
				Specialties:  model.StringList{"hair", "nails"},
				WorkSchedule: schedule.DefaultSalonWeek(),
				IsActive:     true,
			}
			if err := repo.Master.Create(ctx, master); err != nil {
				return fmt.Errorf("failed to create demo master: %w", err)
			}
			if err := repo.Master.SetServices(ctx, master, []model.Service{*haircut, *manicure}); err != nil {
				return fmt.Errorf("failed to link services: %w", err)
			}

			client := &model.Client{
				SalonID: salon.ID,
				Name:    "Maria",
				Phone:   "+15551234567",
			}
			if err := repo.Client.Create(ctx, client); err != nil {
				return fmt.Errorf("failed to create demo client: %w", err)
			}

			fmt.Printf("Seeded demo salon %s (login demo@glowdesk.local / glowdesk-demo)\n", salon.ID)
			return nil
		},
	}

	return cmd
}

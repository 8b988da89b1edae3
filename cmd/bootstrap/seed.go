package bootstrap

import (
	"context"
	"log/slog"

	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdmin),
)

// SeedAdmin creates the configured bootstrap administrator on start if it is
// not there yet. Nothing happens when no seed credentials are configured.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, users commands.UserCommands, logger *slog.Logger) {
	if !cfg.Seed.Enabled() {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := users.EnsureUser(ctx, commands.CreateUserInput{
				Username: cfg.Seed.AdminUsername,
				Password: cfg.Seed.AdminPassword,
			})
			if err != nil {
				return err
			}
			if created {
				logger.Info("Seeded admin user", "username", cfg.Seed.AdminUsername)
			} else {
				logger.Info("Admin user already exists", "username", cfg.Seed.AdminUsername)
			}
			return nil
		},
	})
}

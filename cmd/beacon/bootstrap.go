package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"technobeacon/internal/store"
	"technobeacon/internal/techno"
)

// bootstrap prepares the database for first use: an admin account when
// credentials are configured, and the event catalogue when seeding is
// enabled.
func bootstrap(ctx context.Context, cfg Config, dataStore *store.Store, log zerolog.Logger) error {
	if err := ensureAdminUser(ctx, cfg, dataStore, log); err != nil {
		return err
	}

	if cfg.SeedOnStartup {
		if err := dataStore.InitializeSeedData(ctx); err != nil {
			return fmt.Errorf("seed catalogue: %w", err)
		}
		log.Info().Msg("catalogue seeded")
	}

	return nil
}

func ensureAdminUser(ctx context.Context, cfg Config, dataStore *store.Store, log zerolog.Logger) error {
	if cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	_, err := dataStore.CreateUser(ctx, cfg.AdminUsername, cfg.AdminPassword, techno.RoleAdmin)
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return nil
		}
		return fmt.Errorf("bootstrap admin user: %w", err)
	}

	log.Info().Str("username", cfg.AdminUsername).Msg("admin user created")
	return nil
}

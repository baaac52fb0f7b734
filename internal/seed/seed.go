package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/auth"
)

const defaultAdminEmail = "admin@portal.local"

// CreateDefaultData makes sure a super-admin account exists so the
// portal can be administered on a fresh database. The credentials can
// be overridden with SUPERADMIN_EMAIL and SUPERADMIN_PASSWORD.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var exists bool
	err := dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`,
		models.RoleSuperAdmin,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for a super-admin account: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Super-admin account already present, skipping seed")
		return nil
	}

	email := os.Getenv("SUPERADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "change-me-now"
		lgr.Warn().Str("email", email).Msg("Seeding super-admin with the default password, change it immediately")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash the super-admin password: %w", err)
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO users (email, password, role, name)
		VALUES ($1, $2, $3, $4)`,
		email, hash, models.RoleSuperAdmin, "Portal Administrator",
	)
	if err != nil {
		return fmt.Errorf("failed to create the super-admin account: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Super-admin account created")
	return nil
}

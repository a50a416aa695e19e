package database

import (
	"context"
	"fmt"

	"instaclone/internal/config"

	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"
)

// migrationLockID keys the session-level advisory lock taken while the
// schema is migrated, so concurrently starting replicas serialize.
const migrationLockID = 2847_1139

// Migrate brings the schema up to date for the registered models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// MigrateWithLock runs Migrate while holding a PostgreSQL advisory lock.
// It opens a dedicated pgx connection for the lock's lifetime.
func MigrateWithLock(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	conn, err := pgx.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("migration lock connection failed: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		_, _ = conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID)
	}()

	return Migrate(db)
}

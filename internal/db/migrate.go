package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/udisondev/buffcalc/internal/db/migrations"
)

// RunMigrations opens a short-lived database/sql handle for dsn and brings
// the build store schema up to date. Safe to call on an up-to-date schema.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	return migrations.Up(ctx, sqlDB)
}

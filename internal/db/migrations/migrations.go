// Package migrations embeds the goose SQL migrations of the build store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up применяет все неприменённые миграции.
// sqlDB must be opened with the pgx stdlib driver.
func Up(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("applying build store migrations: %w", err)
	}
	return nil
}

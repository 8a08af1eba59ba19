package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"nexrates/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the schema up to date before the service starts serving.
func Migrate(ctx context.Context, cfg config.DbServer) error {
	conn, err := sql.Open("pgx", cfg.GetConnectionStr())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(migrationsFS)
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, conn, "migrations")
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/osse101/CashPoolRPG_Go/migrations"
)

// Migrate applies every pending migration for dialect (DriverPostgres or
// DriverSQLite) to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	var gooseDialect goose.Dialect
	switch dialect {
	case DriverPostgres:
		gooseDialect = goose.DialectPostgres
	case DriverSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnknownDialect, dialect)
	}

	dir, err := fs.Sub(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied, "dialect", dialect, "applied", len(results))
	return nil
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrymomot/personsvc/pkg/logger"
)

// Goose dialect names accepted by Migrate.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DefaultMigrationsTable is used when Migrate gets an empty table name.
const DefaultMigrationsTable = "schema_migrations"

// gooseMu serializes Migrate calls: goose keeps its dialect, table name
// and base FS in package-level state.
var gooseMu sync.Mutex

// Migrate applies every pending migration found at the root of migrations.
// Already applied migrations are skipped, so calling it on every start is safe.
func Migrate(ctx context.Context, db *sql.DB, dialect string, migrations fs.FS, migrationTable string, log *slog.Logger) error {
	if log == nil {
		log = logger.NewNope()
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(&gooseLoggerAdapter{log})
	if migrationTable == "" {
		migrationTable = DefaultMigrationsTable
	}
	goose.SetTableName(migrationTable)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Join(ErrSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

// MigratePool applies migrations through a pgx pool.
func MigratePool(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, migrationTable string, log *slog.Logger) error {
	// Bridge the pgx pool to the database/sql interface goose expects.
	// The bridge shares the pool's connections, so it must not be closed here.
	db := stdlib.OpenDBFromPool(pool)
	return Migrate(ctx, db, DialectPostgres, migrations, migrationTable, log)
}

type gooseLoggerAdapter struct {
	log *slog.Logger
}

func (g *gooseLoggerAdapter) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLoggerAdapter) Fatalf(format string, args ...any) {
	// Log at error level only - goose returns an error that propagates up.
	g.log.Error(fmt.Sprintf(format, args...))
}

// Package db opens and migrates the databases the service can run on.
//
// PostgreSQL is reached through [github.com/jackc/pgx/v5/pgxpool] with
// retrying startup. SQLite is opened through the pure Go
// [modernc.org/sqlite] driver. Both are migrated with
// [github.com/pressly/goose/v3] from an embedded filesystem.
//
// # Configuration
//
// Postgres settings are loaded from environment variables:
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 10)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 2)
//	DATABASE_HEALTHCHECK_PERIOD - Health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//	DATABASE_MIGRATIONS_TABLE   - Migrations table name (default: schema_migrations)
//
// # Usage
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	sqlDB, err := db.OpenSQLite(ctx, "persons.db")
//
// # Migrations
//
//	//go:embed migrations/*.sql
//	var migrations embed.FS
//
//	sub, _ := fs.Sub(migrations, "migrations")
//	err := db.MigratePool(ctx, pool, sub, "schema_migrations", log)
//	err = db.Migrate(ctx, sqlDB, db.DialectSQLite, sub, "schema_migrations", log)
//
// Goose keeps global state, so [Migrate] calls are serialized.
//
// # Health Checks
//
//	internal.WithReadinessCheck("db", db.Healthcheck(pool))
//
// # Error Handling
//
//   - [ErrFailedToParseDBConfig] - Invalid connection string format
//   - [ErrFailedToOpenDBConnection] - Connection failed after all retries
//   - [ErrHealthcheckFailed] - Database ping failed
//   - [ErrSetDialect] - Migration dialect configuration error
//   - [ErrApplyMigrations] - Migration execution failed
//   - [ErrEmptySQLitePath] - No SQLite path given
//   - [ErrShutdownTimeout] - Pool close outlived the shutdown context
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package db

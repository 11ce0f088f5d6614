package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/personsvc/internal/store/migrations"
	"github.com/dmitrymomot/personsvc/pkg/db"
	"github.com/dmitrymomot/personsvc/pkg/logger"
)

const closeTimeout = 10 * time.Second

// Postgres is a Store backed by a pgx connection pool.
type Postgres struct {
	pool           *pgxpool.Pool
	logger         *slog.Logger
	migrationTable string
}

// NewPostgres wraps an open pool. The pool is closed by Close.
func NewPostgres(pool *pgxpool.Pool, migrationTable string, log *slog.Logger) *Postgres {
	if log == nil {
		log = logger.NewNope()
	}
	return &Postgres{pool: pool, migrationTable: migrationTable, logger: log}
}

func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if err := db.MigratePool(ctx, s.pool, migrations.FS, s.migrationTable, s.logger); err != nil {
		return errors.Join(ErrEnsureSchema, err)
	}
	return nil
}

func (s *Postgres) Insert(ctx context.Context, p Person) error {
	if _, err := s.pool.Exec(ctx, insertPostgres, p.Name, p.Number); err != nil {
		return errors.Join(ErrInsert, err)
	}
	return nil
}

func (s *Postgres) SelectAll(ctx context.Context) ([]Person, error) {
	rows, err := s.pool.Query(ctx, selectAll)
	if err != nil {
		return nil, errors.Join(ErrSelect, err)
	}
	persons, err := pgx.CollectRows(rows, pgx.RowToStructByName[Person])
	if err != nil {
		return nil, errors.Join(ErrSelect, err)
	}
	return persons, nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return errors.Join(ErrPing, err)
	}
	return nil
}

// Close waits up to closeTimeout for acquired connections to be released.
func (s *Postgres) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return db.Shutdown(s.pool)(ctx)
}

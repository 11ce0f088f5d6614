package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/personsvc/internal/store/migrations"
	"github.com/dmitrymomot/personsvc/pkg/db"
	"github.com/dmitrymomot/personsvc/pkg/logger"
)

// SQL is a Store backed by database/sql with "?" placeholders.
type SQL struct {
	db             *sql.DB
	logger         *slog.Logger
	dialect        string
	migrationTable string
}

// NewSQL wraps an open handle. dialect is a goose dialect, db.DialectSQLite in practice.
func NewSQL(sqlDB *sql.DB, dialect, migrationTable string, log *slog.Logger) *SQL {
	if log == nil {
		log = logger.NewNope()
	}
	return &SQL{db: sqlDB, dialect: dialect, migrationTable: migrationTable, logger: log}
}

// OpenSQLite opens the SQLite file at path and wraps it in a SQL store.
func OpenSQLite(ctx context.Context, path, migrationTable string, log *slog.Logger) (*SQL, error) {
	sqlDB, err := db.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQL(sqlDB, db.DialectSQLite, migrationTable, log), nil
}

func (s *SQL) EnsureSchema(ctx context.Context) error {
	if err := db.Migrate(ctx, s.db, s.dialect, migrations.FS, s.migrationTable, s.logger); err != nil {
		return errors.Join(ErrEnsureSchema, err)
	}
	return nil
}

func (s *SQL) Insert(ctx context.Context, p Person) error {
	if _, err := s.db.ExecContext(ctx, insertSQL, p.Name, p.Number); err != nil {
		return errors.Join(ErrInsert, err)
	}
	return nil
}

func (s *SQL) SelectAll(ctx context.Context) ([]Person, error) {
	rows, err := s.db.QueryContext(ctx, selectAll)
	if err != nil {
		return nil, errors.Join(ErrSelect, err)
	}
	defer rows.Close()

	var persons []Person
	for rows.Next() {
		var p Person
		if err := rows.Scan(&p.Name, &p.Number); err != nil {
			return nil, errors.Join(ErrSelect, err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrSelect, err)
	}
	return persons, nil
}

func (s *SQL) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return errors.Join(ErrPing, err)
	}
	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

package db

import (
	"context"
	"errors"
)

// Pinger is implemented by *pgxpool.Pool and by the store adapters.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Healthcheck returns a readiness check that pings the database.
//
// Example:
//
//	internal.WithReadinessCheck("db", db.Healthcheck(pool))
func Healthcheck(p Pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := p.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

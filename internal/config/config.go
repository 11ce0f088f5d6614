// Package config loads the service configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/personsvc/pkg/db"
	"github.com/dmitrymomot/personsvc/pkg/logger"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrParse             = errors.New("config: failed to parse environment")
	ErrUnknownDriver     = errors.New("config: unknown database driver")
	ErrMissingConnURL    = errors.New("config: DATABASE_CONN_URL is required for the postgres driver")
	ErrMissingSQLitePath = errors.New("config: SQLITE_PATH is required for the sqlite driver")
	ErrMissingTemplates  = errors.New("config: TEMPLATES_DIR is required")
)

// Config is the complete service configuration.
type Config struct {
	HTTP      HTTPConfig
	Database  DatabaseConfig
	Templates TemplatesConfig
	Log       logger.Config
	Sentry    logger.SentryConfig
}

// HTTPConfig configures the listener.
type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig selects and configures the store backend.
type DatabaseConfig struct {
	Driver     string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"persons.db"`
	Postgres   db.Config
}

// MigrationsTable returns the goose version table shared by both drivers.
func (c DatabaseConfig) MigrationsTable() string {
	return c.Postgres.MigrationsTable
}

// TemplatesConfig configures the template renderer.
type TemplatesConfig struct {
	Dir     string `env:"TEMPLATES_DIR" envDefault:"templates"`
	Ext     string `env:"TEMPLATES_EXT" envDefault:"mustache"`
	Preload bool   `env:"TEMPLATES_PRELOAD" envDefault:"true"`
}

// Load reads the configuration from the process environment and validates it.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the configuration from the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParse, err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the tags cannot express.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Postgres.ConnectionString == "" {
			return ErrMissingConnURL
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Database.SQLitePath) == "" {
			return ErrMissingSQLitePath
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Database.Driver)
	}
	if strings.TrimSpace(c.Templates.Dir) == "" {
		return ErrMissingTemplates
	}
	return nil
}

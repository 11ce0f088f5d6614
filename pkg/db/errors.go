package db

import "errors"

// Connection errors.
var (
	ErrFailedToParseDBConfig    = errors.New("db: invalid connection string")
	ErrFailedToOpenDBConnection = errors.New("db: unable to connect")
	ErrEmptySQLitePath          = errors.New("db: empty sqlite path")
	ErrHealthcheckFailed        = errors.New("db: ping failed")
	ErrShutdownTimeout          = errors.New("db: pool close timed out")
)

// Migration errors.
var (
	ErrSetDialect      = errors.New("db: unsupported migration dialect")
	ErrApplyMigrations = errors.New("db: migrations failed")
)

// Package migrations embeds the schema of the persons table.
package migrations

import "embed"

// FS holds the goose migrations at its root.
//
//go:embed *.sql
var FS embed.FS

// Package recap holds assets embedded into the recap binary.
package recap

import "embed"

// Migrations contains the goose SQL migrations applied by postgres.PgSQL.Migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

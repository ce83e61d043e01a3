// Package migrations embeds the goose SQL migrations, one directory per dialect.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite/*.sql.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dir returns the migration directory inside FS for a goose dialect name.
func Dir(dialect string) string {
	if dialect == "sqlite3" {
		return "sqlite"
	}
	return "postgres"
}

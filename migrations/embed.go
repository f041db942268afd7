// Package migrations embeds SQL migration files into the binary, so the
// audit trail schema needs no SQL files on the filesystem at runtime.
package migrations

import (
	"embed"

	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "." // Files are at root of embedded FS
}

package postgres

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.up.sql
var migrationsFS embed.FS

// MigrationFiles returns the embedded schema migrations rooted at the
// migrations directory, ready to pass to database.RunMigrations.
func MigrationFiles() fs.FS {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		// The directory is compiled into the binary; a failure here is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return sub
}

package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_history.sql
var migration001 string

//go:embed migrations/002_sessions.sql
var migration002 string

// migrations is an ordered list of migration SQL statements.
var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
	{2, migration002},
}

// LatestVersion is the schema version after all migrations.
func LatestVersion() int {
	return migrations[len(migrations)-1].version
}

// applyMigrations applies all pending migrations, each in its own
// transaction.
func applyMigrations(db *DB) error {
	current, err := db.CurrentVersion()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := db.Transaction(func(tx *sql.Tx) error {
			_, err := tx.Exec(m.sql)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
		}
	}

	return nil
}

package history

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS retired_notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			notification_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			priority TEXT NOT NULL,
			message TEXT NOT NULL,
			title TEXT,
			source TEXT,
			target TEXT,
			outcome TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			retired_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_retired_outcome ON retired_notifications(outcome);
		CREATE INDEX IF NOT EXISTS idx_retired_at ON retired_notifications(retired_at);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}

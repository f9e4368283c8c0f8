package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Players (profile + latest measurement snapshot)
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			position TEXT NOT NULL DEFAULT '',
			club_since INTEGER NOT NULL DEFAULT 0,
			education TEXT NOT NULL DEFAULT '',
			calendar_age REAL NOT NULL,
			height REAL NOT NULL,
			previous_height REAL,
			weight REAL NOT NULL,
			previous_weight REAL,
			body_fat REAL,
			training_days REAL,
			injury_days REAL,
			matches REAL,
			minutes REAL,
			total_distance REAL,
			sprint_distance REAL,
			sprint_10m REAL,
			sprint_30m REAL,
			cod_left REAL,
			cod_right REAL,
			club_rating_10m REAL,
			club_rating_30m REAL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_players_updated_at ON players(updated_at)`,
		`CREATE INDEX IF NOT EXISTS idx_players_last_name ON players(last_name)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed-width so that timestamps sort lexically in SQL
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const playerColumns = `id, first_name, last_name, position, club_since, education,
	calendar_age, height, previous_height, weight, previous_weight, body_fat,
	training_days, injury_days, matches, minutes, total_distance, sprint_distance,
	sprint_10m, sprint_30m, cod_left, cod_right, club_rating_10m, club_rating_30m,
	notes, created_at, updated_at`

// ListPlayers returns every player, most recently updated first
func (db *DB) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+playerColumns+`
		FROM players
		ORDER BY updated_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// GetPlayer retrieves a single player by ID
func (db *DB) GetPlayer(ctx context.Context, id string) (*Player, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+playerColumns+`
		FROM players
		WHERE id = ?
	`, id)

	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AddPlayer inserts a new player and returns its ID.
// A fresh UUID is assigned when p.ID is empty.
func (db *DB) AddPlayer(ctx context.Context, p *Player) (string, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := db.now().UTC()

	_, err := db.ExecContext(ctx, `
		INSERT INTO players (`+playerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id, p.FirstName, p.LastName, p.Position, p.ClubSince, p.Education,
		p.CalendarAge, p.Height, p.PreviousHeight, p.Weight, p.PreviousWeight, p.BodyFat,
		p.TrainingDays, p.InjuryDays, p.Matches, p.Minutes, p.TotalDistance, p.SprintDistance,
		p.Sprint10m, p.Sprint30m, p.CODLeft, p.CODRight, p.ClubRating10m, p.ClubRating30m,
		p.Notes, now.Format(timeLayout), now.Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("inserting player: %w", err)
	}

	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	return id, nil
}

// UpdatePlayer overwrites a player's profile and measurements and bumps updated_at
func (db *DB) UpdatePlayer(ctx context.Context, p *Player) error {
	now := db.now().UTC()

	result, err := db.ExecContext(ctx, `
		UPDATE players SET
			first_name = ?, last_name = ?, position = ?, club_since = ?, education = ?,
			calendar_age = ?, height = ?, previous_height = ?, weight = ?, previous_weight = ?, body_fat = ?,
			training_days = ?, injury_days = ?, matches = ?, minutes = ?, total_distance = ?, sprint_distance = ?,
			sprint_10m = ?, sprint_30m = ?, cod_left = ?, cod_right = ?, club_rating_10m = ?, club_rating_30m = ?,
			notes = ?, updated_at = ?
		WHERE id = ?
	`,
		p.FirstName, p.LastName, p.Position, p.ClubSince, p.Education,
		p.CalendarAge, p.Height, p.PreviousHeight, p.Weight, p.PreviousWeight, p.BodyFat,
		p.TrainingDays, p.InjuryDays, p.Matches, p.Minutes, p.TotalDistance, p.SprintDistance,
		p.Sprint10m, p.Sprint30m, p.CODLeft, p.CODRight, p.ClubRating10m, p.ClubRating30m,
		p.Notes, now.Format(timeLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating player: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPlayerNotFound
	}

	p.UpdatedAt = now
	return nil
}

// DeletePlayer removes a player
func (db *DB) DeletePlayer(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// CountPlayers returns the roster size
func (db *DB) CountPlayers(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPlayer scans a single player from a row
func scanPlayer(row rowScanner) (*Player, error) {
	var p Player
	var createdAt, updatedAt string

	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Position, &p.ClubSince, &p.Education,
		&p.CalendarAge, &p.Height, &p.PreviousHeight, &p.Weight, &p.PreviousWeight, &p.BodyFat,
		&p.TrainingDays, &p.InjuryDays, &p.Matches, &p.Minutes, &p.TotalDistance, &p.SprintDistance,
		&p.Sprint10m, &p.Sprint30m, &p.CODLeft, &p.CODRight, &p.ClubRating10m, &p.ClubRating30m,
		&p.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if p.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &p, nil
}

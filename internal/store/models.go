package store

import "time"

// Player is a single player's profile plus the latest measurement snapshot.
// Optional measurements are nil until recorded; zero is a real value.
type Player struct {
	ID        string `db:"id" yaml:"id"`
	FirstName string `db:"first_name" yaml:"first_name"`
	LastName  string `db:"last_name" yaml:"last_name"`
	Position  string `db:"position" yaml:"position"`
	ClubSince int    `db:"club_since" yaml:"club_since"` // year joined
	Education string `db:"education" yaml:"education"`

	// Anthropometrics
	CalendarAge    float64  `db:"calendar_age" yaml:"calendar_age"` // decimal years, e.g. 17.5
	Height         float64  `db:"height" yaml:"height"`             // cm
	PreviousHeight *float64 `db:"previous_height" yaml:"previous_height"`
	Weight         float64  `db:"weight" yaml:"weight"` // kg
	PreviousWeight *float64 `db:"previous_weight" yaml:"previous_weight"`
	BodyFat        *float64 `db:"body_fat" yaml:"body_fat"` // percent

	// Season load
	TrainingDays   *float64 `db:"training_days" yaml:"training_days"`
	InjuryDays     *float64 `db:"injury_days" yaml:"injury_days"`
	Matches        *float64 `db:"matches" yaml:"matches"`
	Minutes        *float64 `db:"minutes" yaml:"minutes"`
	TotalDistance  *float64 `db:"total_distance" yaml:"total_distance"`   // meters
	SprintDistance *float64 `db:"sprint_distance" yaml:"sprint_distance"` // meters

	// Motor tests, seconds
	Sprint10m *float64 `db:"sprint_10m" yaml:"sprint_10m"`
	Sprint30m *float64 `db:"sprint_30m" yaml:"sprint_30m"`
	CODLeft   *float64 `db:"cod_left" yaml:"cod_left"`
	CODRight  *float64 `db:"cod_right" yaml:"cod_right"`

	ClubRating10m *float64 `db:"club_rating_10m" yaml:"club_rating_10m"` // 1-10
	ClubRating30m *float64 `db:"club_rating_30m" yaml:"club_rating_30m"` // 1-10

	Notes string `db:"notes" yaml:"notes"`

	CreatedAt time.Time `db:"created_at" yaml:"-"`
	UpdatedAt time.Time `db:"updated_at" yaml:"-"`
}

// FullName returns "First Last", trimmed when either part is missing.
func (p Player) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

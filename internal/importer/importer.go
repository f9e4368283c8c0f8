// Package importer reads player rosters from YAML files.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
)

// ErrEmptyRoster is returned when a roster file lists no players
var ErrEmptyRoster = errors.New("roster contains no players")

type rosterFile struct {
	Players []store.Player `yaml:"players"`
}

// LoadRoster reads and validates the roster at path
func LoadRoster(path string) ([]store.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes a YAML roster. Unknown keys are rejected so that a
// misspelled measurement is not silently dropped.
func ParseRoster(data []byte) ([]store.Player, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f rosterFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRoster
		}
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if len(f.Players) == 0 {
		return nil, ErrEmptyRoster
	}

	seen := make(map[string]int)
	for i, p := range f.Players {
		if err := validatePlayer(p); err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		if p.ID == "" {
			continue
		}
		if j, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("player %d: duplicate id %q (also player %d)", i+1, p.ID, j+1)
		}
		seen[p.ID] = i
	}

	return f.Players, nil
}

func validatePlayer(p store.Player) error {
	if p.FirstName == "" && p.LastName == "" {
		return errors.New("name is required")
	}
	if p.CalendarAge < 0 || p.Height < 0 || p.Weight < 0 {
		return fmt.Errorf("%s: age, height and weight must not be negative", p.FullName())
	}

	optional := map[string]*float64{
		"previous_height": p.PreviousHeight,
		"previous_weight": p.PreviousWeight,
		"body_fat":        p.BodyFat,
		"training_days":   p.TrainingDays,
		"injury_days":     p.InjuryDays,
		"matches":         p.Matches,
		"minutes":         p.Minutes,
		"total_distance":  p.TotalDistance,
		"sprint_distance": p.SprintDistance,
		"sprint_10m":      p.Sprint10m,
		"sprint_30m":      p.Sprint30m,
		"cod_left":        p.CODLeft,
		"cod_right":       p.CODRight,
	}
	for name, v := range optional {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s: %s must not be negative, got %v", p.FullName(), name, *v)
		}
	}

	for name, v := range map[string]*float64{"club_rating_10m": p.ClubRating10m, "club_rating_30m": p.ClubRating30m} {
		if v != nil && (*v < 1 || *v > 10) {
			return fmt.Errorf("%s: %s must be between 1 and 10, got %v", p.FullName(), name, *v)
		}
	}

	return nil
}

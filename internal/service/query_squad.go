package service

import (
	"context"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/analysis"
)

// SquadData contains all data needed for the squad screen
type SquadData struct {
	Summary analysis.SquadSummary
	Recent  []PlayerWithResults // most recently updated first
}

// SquadSummary aggregates computed results over the whole roster
func (s *RosterService) SquadSummary(ctx context.Context) (*analysis.SquadSummary, error) {
	data, err := s.GetSquadData(ctx)
	if err != nil {
		return nil, err
	}
	return &data.Summary, nil
}

// GetSquadData fetches the squad summary plus the recently updated players
func (s *RosterService) GetSquadData(ctx context.Context) (*SquadData, error) {
	roster, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]analysis.Results, len(roster))
	for i, pr := range roster {
		results[i] = pr.Results
	}

	recent := roster
	if len(recent) > RecentPlayersLimit {
		recent = recent[:RecentPlayersLimit]
	}

	return &SquadData{
		Summary: analysis.Summarize(results),
		Recent:  recent,
	}, nil
}

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/analysis"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
)

// RosterService provides roster queries and changes for the CLI and TUI
type RosterService struct {
	store   *store.DB
	engine  analysis.Engine
	workers int
	log     logrus.FieldLogger
}

// NewRosterService creates a new roster service. workers < 1 uses DefaultWorkers
// and a nil logger discards output.
func NewRosterService(db *store.DB, engine analysis.Engine, workers int, log logrus.FieldLogger) *RosterService {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &RosterService{store: db, engine: engine, workers: workers, log: log}
}

// PlayerWithResults combines a player and its computed indicators
type PlayerWithResults struct {
	Player  store.Player
	Results analysis.Results
}

// Report is everything shown on a player report
type Report struct {
	Player   store.Player
	Results  analysis.Results
	Comments []string
}

// ListPlayers returns every player with computed results, most recently
// updated first
func (s *RosterService) ListPlayers(ctx context.Context) ([]PlayerWithResults, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}

	out, err := s.computeAll(ctx, players)
	if err != nil {
		return nil, err
	}

	s.log.WithField("players", len(out)).Debug("computed roster")
	return out, nil
}

// computeAll runs the engine over players on a bounded pool, keeping order
func (s *RosterService) computeAll(ctx context.Context, players []store.Player) ([]PlayerWithResults, error) {
	out := make([]PlayerWithResults, len(players))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range players {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = PlayerWithResults{
				Player:  players[i],
				Results: s.engine.Compute(players[i]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("computing results: %w", err)
	}

	return out, nil
}

// GetReport computes the full report for one player
func (s *RosterService) GetReport(ctx context.Context, id string) (*Report, error) {
	p, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting player %s: %w", id, err)
	}

	r := s.engine.Compute(*p)
	s.log.WithFields(logrus.Fields{
		"player_id": id,
		"rating":    r.OverallRating,
		"maturity":  r.MaturityCategory,
	}).Debug("computed report")

	return &Report{
		Player:   *p,
		Results:  r,
		Comments: analysis.ReportComments(*p, r),
	}, nil
}

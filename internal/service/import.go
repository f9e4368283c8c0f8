package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
)

// ImportStats summarises an import
type ImportStats struct {
	IDs     []string // in input order
	Added   int
	Updated int
}

// ImportPlayers stores players in order. A player whose ID already exists is
// updated; everything else is added with a new ID when none is given.
func (s *RosterService) ImportPlayers(ctx context.Context, players []store.Player) (*ImportStats, error) {
	stats := &ImportStats{IDs: make([]string, 0, len(players))}

	for i := range players {
		p := players[i]
		log := s.log.WithField("player", p.FullName())

		if p.ID != "" {
			err := s.store.UpdatePlayer(ctx, &p)
			if err == nil {
				stats.IDs = append(stats.IDs, p.ID)
				stats.Updated++
				log.WithField("player_id", p.ID).Info("updated player")
				continue
			}
			if !errors.Is(err, store.ErrPlayerNotFound) {
				return stats, fmt.Errorf("importing %s: %w", p.FullName(), err)
			}
		}

		id, err := s.store.AddPlayer(ctx, &p)
		if err != nil {
			return stats, fmt.Errorf("importing %s: %w", p.FullName(), err)
		}
		stats.IDs = append(stats.IDs, id)
		stats.Added++
		log.WithField("player_id", id).Info("added player")
	}

	s.log.WithFields(logrus.Fields{
		"added":   stats.Added,
		"updated": stats.Updated,
	}).Info("import complete")

	return stats, nil
}

// DeletePlayer removes a player from the roster
func (s *RosterService) DeletePlayer(ctx context.Context, id string) error {
	if err := s.store.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("deleting player %s: %w", id, err)
	}
	s.log.WithField("player_id", id).Info("deleted player")
	return nil
}

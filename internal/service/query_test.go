package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/analysis"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
)

func floatPtr(f float64) *float64 {
	return &f
}

// setupService creates a service over an in-memory database whose clock
// advances one second per write
func setupService(t *testing.T) (*RosterService, *store.DB, *test.Hook) {
	t.Helper()

	base := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	calls := 0
	db, err := store.NewTestDB(func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	return NewRosterService(db, analysis.DefaultEngine(), 2, log), db, hook
}

func samplePlayer(first, last string) store.Player {
	return store.Player{
		FirstName:    first,
		LastName:     last,
		CalendarAge:  16,
		Height:       175,
		Weight:       65,
		TrainingDays: floatPtr(100),
		InjuryDays:   floatPtr(10),
		Sprint10m:    floatPtr(1.80),
	}
}

func TestNewRosterService_Defaults(t *testing.T) {
	s := NewRosterService(nil, analysis.DefaultEngine(), 0, nil)
	assert.Equal(t, DefaultWorkers, s.workers)
	assert.NotNil(t, s.log)
}

func TestListPlayers(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"Ana", "Ben", "Cid"} {
		p := samplePlayer(name, "Test")
		_, err := db.AddPlayer(ctx, &p)
		require.NoError(t, err)
	}

	roster, err := s.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 3)

	// most recently updated first
	assert.Equal(t, "Cid", roster[0].Player.FirstName)
	assert.Equal(t, "Ana", roster[2].Player.FirstName)

	for _, pr := range roster {
		assert.Equal(t, analysis.Compute(pr.Player), pr.Results)
		assert.NotNil(t, pr.Results.BiologicalAge)
		assert.NotNil(t, pr.Results.ZScore10m)
	}
}

func TestListPlayers_Empty(t *testing.T) {
	s, _, _ := setupService(t)

	roster, err := s.ListPlayers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestListPlayers_CanceledContext(t *testing.T) {
	s, db, _ := setupService(t)

	p := samplePlayer("Ana", "Test")
	_, err := db.AddPlayer(context.Background(), &p)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.ListPlayers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetReport(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()

	p := samplePlayer("Ana", "Test")
	id, err := db.AddPlayer(ctx, &p)
	require.NoError(t, err)

	report, err := s.GetReport(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Ana Test", report.Player.FullName())
	require.NotNil(t, report.Results.Availability)
	assert.InDelta(t, 90, *report.Results.Availability, 1e-9)
	assert.Contains(t, report.Comments, "Missed 10 days due to injury")
	assert.NotEmpty(t, report.Results.Suggestions)
}

func TestGetReport_NotFound(t *testing.T) {
	s, _, _ := setupService(t)

	_, err := s.GetReport(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrPlayerNotFound))
}

func TestImportPlayers(t *testing.T) {
	s, db, hook := setupService(t)
	ctx := context.Background()

	existing := samplePlayer("Ana", "Test")
	existingID, err := db.AddPlayer(ctx, &existing)
	require.NoError(t, err)

	changed := samplePlayer("Ana", "Renamed")
	changed.ID = existingID
	withID := samplePlayer("Ben", "Test")
	withID.ID = "ben-1"
	fresh := samplePlayer("Cid", "Test")

	stats, err := s.ImportPlayers(ctx, []store.Player{changed, withID, fresh})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Added)
	assert.Equal(t, 1, stats.Updated)
	require.Len(t, stats.IDs, 3)
	assert.Equal(t, existingID, stats.IDs[0])
	assert.Equal(t, "ben-1", stats.IDs[1])
	assert.NotEmpty(t, stats.IDs[2])

	got, err := db.GetPlayer(ctx, existingID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.LastName)

	n, err := db.CountPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "import complete", last.Message)
	assert.Equal(t, 2, last.Data["added"])
	assert.Equal(t, 1, last.Data["updated"])
}

func TestImportPlayers_LeavesInputUntouched(t *testing.T) {
	s, _, _ := setupService(t)

	in := []store.Player{samplePlayer("Ana", "Test")}
	_, err := s.ImportPlayers(context.Background(), in)
	require.NoError(t, err)

	assert.Empty(t, in[0].ID)
}

func TestDeletePlayer(t *testing.T) {
	s, db, hook := setupService(t)
	ctx := context.Background()

	p := samplePlayer("Ana", "Test")
	id, err := db.AddPlayer(ctx, &p)
	require.NoError(t, err)

	require.NoError(t, s.DeletePlayer(ctx, id))
	assert.Equal(t, "deleted player", hook.LastEntry().Message)

	err = s.DeletePlayer(ctx, id)
	assert.ErrorIs(t, err, store.ErrPlayerNotFound)
}

func TestSquadSummary(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()

	fast := samplePlayer("Ana", "Test")
	slow := samplePlayer("Ben", "Test")
	slow.Sprint10m = floatPtr(2.0)
	untested := samplePlayer("Cid", "Test")
	untested.Sprint10m = nil

	for _, p := range []store.Player{fast, slow, untested} {
		_, err := db.AddPlayer(ctx, &p)
		require.NoError(t, err)
	}

	summary, err := s.SquadSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Players)
	assert.Equal(t, 2, summary.Sprint10m.Count)
	assert.Equal(t, 0, summary.CODLeft.Count)
	assert.InDelta(t, 90, summary.AvgAvailability, 1e-9)

	total := 0
	for _, n := range summary.ByRating {
		total += n
	}
	assert.Equal(t, 3, total)
}

func TestGetSquadData_RecentLimit(t *testing.T) {
	s, db, _ := setupService(t)
	ctx := context.Background()

	for i := 0; i < RecentPlayersLimit+2; i++ {
		p := samplePlayer("Player", string(rune('A'+i)))
		_, err := db.AddPlayer(ctx, &p)
		require.NoError(t, err)
	}

	data, err := s.GetSquadData(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Recent, RecentPlayersLimit)
	assert.Equal(t, RecentPlayersLimit+2, data.Summary.Players)
	assert.Equal(t, "G", data.Recent[0].Player.LastName)
}

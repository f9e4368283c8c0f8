package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
)

// Results holds everything derived from one player snapshot.
// A nil field was not computed because its inputs were missing.
type Results struct {
	BiologicalAge      *float64
	MaturityOffset     *float64
	MaturityCategory   string
	GrowthRate         *float64 // cm/year, approximates PHV
	Availability       *float64 // percent
	SprintPercent      *float64 // percent of total distance
	PlayingTimePercent *float64 // percent of available minutes
	ZScore10m          *float64
	ZScore30m          *float64
	ZScoreCODLeft      *float64
	ZScoreCODRight     *float64
	OverallRating      string
	Suggestions        []string
}

// Engine computes Results against a reference dataset and load settings
type Engine struct {
	Reference     ReferenceLookup
	MonthsBetween float64
	MatchDuration float64
}

// DefaultEngine uses the built-in reference table, a 6 month height interval and
// 90 minute matches
func DefaultEngine() Engine {
	return Engine{
		Reference:     LookupReference,
		MonthsBetween: DefaultMonthsBetween,
		MatchDuration: DefaultMatchDuration,
	}
}

// Compute runs the full pipeline with DefaultEngine
func Compute(p store.Player) Results {
	return DefaultEngine().Compute(p)
}

// Compute derives all indicators for a player. Each output is produced only when
// all of its inputs are present; nothing here returns an error.
func (e Engine) Compute(p store.Player) Results {
	var r Results

	// Unset settings take the package defaults
	monthsBetween := e.MonthsBetween
	if monthsBetween == 0 {
		monthsBetween = DefaultMonthsBetween
	}
	matchDuration := e.MatchDuration
	if matchDuration == 0 {
		matchDuration = DefaultMatchDuration
	}

	// Biological age; zero means not measured for these three
	if p.CalendarAge != 0 && p.Height != 0 && p.Weight != 0 {
		m := EstimateBiologicalAge(p.CalendarAge, p.Height, p.Weight)
		r.BiologicalAge = &m.BiologicalAge
		r.MaturityOffset = &m.MaturityOffset
		r.MaturityCategory = m.Category
	}

	// Growth rate
	if p.Height != 0 && p.PreviousHeight != nil && *p.PreviousHeight != 0 {
		r.GrowthRate = EstimateGrowthRate(p.Height, p.PreviousHeight, monthsBetween)
	}

	// Load
	if p.TrainingDays != nil && p.InjuryDays != nil {
		r.Availability = ptr(Availability(*p.TrainingDays, *p.InjuryDays))
	}
	if p.SprintDistance != nil && p.TotalDistance != nil {
		r.SprintPercent = ptr(SprintPercent(*p.SprintDistance, *p.TotalDistance))
	}
	if p.Minutes != nil && p.Matches != nil {
		r.PlayingTimePercent = ptr(PlayingTimePercent(*p.Minutes, *p.Matches, matchDuration))
	}

	// Motor tests, normalized against the biological age
	if r.BiologicalAge != nil && *r.BiologicalAge != 0 {
		lookup := e.Reference
		if lookup == nil {
			lookup = LookupReference
		}
		ref := lookup(*r.BiologicalAge)

		r.ZScore10m = scoreTimedTest(p.Sprint10m, ref.Sprint10m)
		r.ZScore30m = scoreTimedTest(p.Sprint30m, ref.Sprint30m)
		r.ZScoreCODLeft = scoreTimedTest(p.CODLeft, ref.COD)
		r.ZScoreCODRight = scoreTimedTest(p.CODRight, ref.COD)
	}

	r.OverallRating = InterpretZScore(OverallZScore(r))
	r.Suggestions = GenerateSuggestions(p, r)

	return r
}

// OverallZScore averages the four test slots, counting missing tests as 0.
// With fewer than four tests this understates the mean.
func OverallZScore(r Results) float64 {
	slots := []float64{
		valueOr(r.ZScore10m, 0),
		valueOr(r.ZScore30m, 0),
		valueOr(r.ZScoreCODLeft, 0),
		valueOr(r.ZScoreCODRight, 0),
	}
	return stat.Mean(slots, nil)
}

// scoreTimedTest returns nil for a missing or zero time
func scoreTimedTest(seconds *float64, ref ReferenceStats) *float64 {
	if seconds == nil || *seconds == 0 {
		return nil
	}
	return ptr(timedZScore(*seconds, ref))
}

func ptr(f float64) *float64 {
	return &f
}

func valueOr(f *float64, fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return *f
}

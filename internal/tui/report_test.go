package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/analysis"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/config"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/service"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
)

func testFormat() Format {
	return NewFormat(config.DefaultConfig().Display)
}

func lateBloomerReport() *service.Report {
	p := store.Player{
		ID:             "p-1",
		FirstName:      "Luka",
		LastName:       "Horvat",
		Position:       "Winger",
		ClubSince:      2019,
		CalendarAge:    16,
		Height:         176,
		PreviousHeight: floatPtr(172),
		Weight:         64,
		TrainingDays:   floatPtr(140),
		InjuryDays:     floatPtr(14),
		Matches:        floatPtr(10),
		Minutes:        floatPtr(720),
		TotalDistance:  floatPtr(80000),
		SprintDistance: floatPtr(10400),
		Sprint10m:      floatPtr(1.72),
		Sprint30m:      floatPtr(4.10),
		ClubRating10m:  floatPtr(8),
		Notes:          "Works hard on the left foot.",
	}
	r := analysis.Results{
		BiologicalAge:      floatPtr(15.3),
		MaturityOffset:     floatPtr(-0.7),
		MaturityCategory:   analysis.CategoryLateBloomer,
		GrowthRate:         floatPtr(8),
		Availability:       floatPtr(90),
		SprintPercent:      floatPtr(13),
		PlayingTimePercent: floatPtr(80),
		ZScore10m:          floatPtr(1.2),
		ZScore30m:          floatPtr(-0.7),
		OverallRating:      analysis.RatingAverage,
		Suggestions:        []string{analysis.SuggestLateBloomerFocus, analysis.SuggestTopSpeed},
	}
	return &service.Report{
		Player:   p,
		Results:  r,
		Comments: analysis.ReportComments(p, r),
	}
}

func TestRenderReport(t *testing.T) {
	out := RenderReport(lateBloomerReport(), testFormat())

	for _, want := range []string{
		"Luka Horvat",
		"Winger",
		"at the club since 2019",
		"Biological Maturity",
		"15.3 yrs",
		"Late Bloomer:",
		"↑ +4.0 cm",
		"Growth rate (PHV)",
		"Missed 14 days due to injury.",
		"High physical output:",
		"80,000 m",
		"10 / 720",
		"Above average",
		"Z-score +1.20",
		"Below average",
		"Club rating 8/10",
		"Z-score Profile",
		"10m → 30m",
		analysis.SuggestLateBloomerFocus,
		"Acceleration above average for biological age",
		"Works hard on the left foot.",
	} {
		assert.Contains(t, out, want)
	}

	// COD tests were not recorded
	assert.NotContains(t, out, "COD left")
}

func TestRenderReport_MissingData(t *testing.T) {
	rep := &service.Report{
		Player: store.Player{
			FirstName: "Ante",
			Sprint10m: floatPtr(1.85),
		},
		Results: analysis.Results{
			OverallRating: analysis.RatingAverage,
			Suggestions:   []string{analysis.SuggestContinueProgram, analysis.SuggestMonitorProgress},
		},
	}

	out := RenderReport(rep, testFormat())

	assert.Contains(t, out, "Ante")
	assert.Contains(t, out, "Not scored: biological age unknown")
	assert.NotContains(t, out, "Late Bloomer:")
	assert.NotContains(t, out, "Missed")
	assert.NotContains(t, out, "Z-score Profile", "one test is not enough for a chart")
	assert.NotContains(t, out, "Coach notes")
	assert.NotContains(t, out, "Report comments")
}

func TestRenderReport_TestLabels(t *testing.T) {
	rep := &service.Report{
		Player: store.Player{
			FirstName: "Ivo",
			Sprint10m: floatPtr(1.60),
			Sprint30m: floatPtr(4.60),
			CODLeft:   floatPtr(2.32),
		},
		Results: analysis.Results{
			BiologicalAge: floatPtr(17),
			ZScore10m:     floatPtr(2.0),
			ZScore30m:     floatPtr(-2.4),
			ZScoreCODLeft: floatPtr(0),
			OverallRating: analysis.RatingAverage,
		},
	}

	out := RenderReport(rep, testFormat())

	assert.Contains(t, out, analysis.GradeExcellent)
	assert.Contains(t, out, analysis.GradeNeedsImprovement)
	assert.Contains(t, out, analysis.TextNoData)
	assert.NotContains(t, out, analysis.RatingMuchAbove)
	assert.NotContains(t, out, analysis.RatingMuchBelow)
}

func TestRenderReport_NoTests(t *testing.T) {
	out := RenderReport(&service.Report{Player: store.Player{LastName: "Kovac"}}, testFormat())
	assert.Contains(t, out, "No tests recorded")
}

func TestRenderReport_Nil(t *testing.T) {
	assert.Equal(t, "No data", RenderReport(nil, testFormat()))
}

func TestRenderSquadTests(t *testing.T) {
	out := RenderSquadTests(analysis.SquadSummary{
		Players:   3,
		Sprint10m: analysis.TestSummary{Count: 3, Mean: 0.6, StdDev: 0.4},
		Sprint30m: analysis.TestSummary{Count: 1, Mean: -1.8},
	})

	assert.Contains(t, out, "+0.60")
	assert.Contains(t, out, "0.40")
	assert.Contains(t, out, analysis.RatingAbove)
	assert.Contains(t, out, analysis.RatingMuchBelow)

	lines := strings.Split(out, "\n")
	var codLine string
	for _, l := range lines {
		if strings.Contains(l, "COD right") {
			codLine = l
		}
	}
	assert.Contains(t, codLine, "-")
}

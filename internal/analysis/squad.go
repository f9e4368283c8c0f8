package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TestSummary aggregates one test's Z-scores across a squad
type TestSummary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation, NaN with fewer than two scores
}

// SquadSummary aggregates Results across a roster
type SquadSummary struct {
	Players         int
	Sprint10m       TestSummary
	Sprint30m       TestSummary
	CODLeft         TestSummary
	CODRight        TestSummary
	ByRating        map[string]int
	ByMaturity      map[string]int
	AvgAvailability float64 // mean over players with availability recorded
}

// Summarize aggregates per-player results. Missing Z-scores are skipped rather
// than counted as zero.
func Summarize(results []Results) SquadSummary {
	s := SquadSummary{
		Players:    len(results),
		ByRating:   make(map[string]int),
		ByMaturity: make(map[string]int),
	}

	var z10, z30, codL, codR, avail []float64
	for _, r := range results {
		z10 = appendPresent(z10, r.ZScore10m)
		z30 = appendPresent(z30, r.ZScore30m)
		codL = appendPresent(codL, r.ZScoreCODLeft)
		codR = appendPresent(codR, r.ZScoreCODRight)
		avail = appendPresent(avail, r.Availability)

		s.ByRating[r.OverallRating]++
		if r.MaturityCategory != "" {
			s.ByMaturity[r.MaturityCategory]++
		}
	}

	s.Sprint10m = summarizeTest(z10)
	s.Sprint30m = summarizeTest(z30)
	s.CODLeft = summarizeTest(codL)
	s.CODRight = summarizeTest(codR)
	if len(avail) > 0 {
		s.AvgAvailability = stat.Mean(avail, nil)
	}

	return s
}

func summarizeTest(scores []float64) TestSummary {
	switch len(scores) {
	case 0:
		return TestSummary{}
	case 1:
		return TestSummary{Count: 1, Mean: scores[0], StdDev: math.NaN()}
	}
	mean, std := stat.MeanStdDev(scores, nil)
	return TestSummary{Count: len(scores), Mean: mean, StdDev: std}
}

func appendPresent(dst []float64, f *float64) []float64 {
	if f == nil {
		return dst
	}
	return append(dst, *f)
}

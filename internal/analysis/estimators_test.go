package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateBiologicalAge(t *testing.T) {
	tests := []struct {
		name         string
		calendarAge  float64
		height       float64
		weight       float64
		wantOffset   float64
		wantCategory string
	}{
		{
			// bmi = 50/1.6^2 = 19.5, hfa = 160/17 = 9.4
			name:         "light and short for age - late bloomer",
			calendarAge:  17,
			height:       160,
			weight:       50,
			wantOffset:   -0.7,
			wantCategory: CategoryLateBloomer,
		},
		{
			// bmi = 80/1.9^2 = 22.2 is not > 23, so tall stature alone is not enough
			name:         "tall but moderate bmi - average",
			calendarAge:  17,
			height:       190,
			weight:       80,
			wantOffset:   -0.2,
			wantCategory: CategoryAverage,
		},
		{
			// bmi = 80/1.8^2 = 24.7, hfa = 180/15 = 12
			name:         "heavy and tall for age - early maturer",
			calendarAge:  15,
			height:       180,
			weight:       80,
			wantOffset:   0.5,
			wantCategory: CategoryEarlyMaturer,
		},
		{
			// bmi = 25.7 but hfa = 9.7: both conditions are needed
			name:         "heavy but short - average",
			calendarAge:  17,
			height:       165,
			weight:       70,
			wantOffset:   -0.2,
			wantCategory: CategoryAverage,
		},
		{
			// bmi = 18.4 but hfa = 11.7
			name:         "light but tall - average",
			calendarAge:  15,
			height:       175,
			weight:       56.5,
			wantOffset:   -0.2,
			wantCategory: CategoryAverage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateBiologicalAge(tt.calendarAge, tt.height, tt.weight)

			assert.Equal(t, tt.wantOffset, got.MaturityOffset)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.InDelta(t, tt.calendarAge+tt.wantOffset, got.BiologicalAge, 1e-9)
		})
	}
}

func TestMaturityCategory(t *testing.T) {
	tests := []struct {
		offset float64
		want   string
	}{
		{-0.7, CategoryLateBloomer},
		{-0.51, CategoryLateBloomer},
		{-0.5, CategoryAverage},
		{-0.2, CategoryAverage},
		{0.3, CategoryAverage},
		{0.31, CategoryEarlyMaturer},
		{0.5, CategoryEarlyMaturer},
	}

	for _, tt := range tests {
		if got := MaturityCategory(tt.offset); got != tt.want {
			t.Errorf("MaturityCategory(%v) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestEstimateGrowthRate(t *testing.T) {
	t.Run("no previous height", func(t *testing.T) {
		assert.Nil(t, EstimateGrowthRate(180, nil, 6))
	})

	t.Run("zero interval", func(t *testing.T) {
		assert.Nil(t, EstimateGrowthRate(180, floatPtr(170), 0))
	})

	tests := []struct {
		name     string
		current  float64
		previous float64
		months   float64
		want     float64
	}{
		{"10cm in 6 months", 180, 170, 6, 20},
		{"10cm in a year", 180, 170, 12, 10},
		{"no growth", 175, 175, 6, 0},
		{"shrinking is preserved", 170, 172, 6, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateGrowthRate(tt.current, floatPtr(tt.previous), tt.months)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 1e-9)
		})
	}
}

func TestAvailability(t *testing.T) {
	tests := []struct {
		name     string
		training float64
		injury   float64
		want     float64
	}{
		{"typical", 10, 2, 80},
		{"no injuries", 120, 0, 100},
		{"no training days", 0, 5, 0},
		{"no training and no injury", 0, 0, 0},
		{"more injury than training is not clamped", 10, 12, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Availability(tt.training, tt.injury), 1e-9)
		})
	}
}

func TestSprintPercent(t *testing.T) {
	assert.InDelta(t, 10, SprintPercent(100, 1000), 1e-9)
	assert.Equal(t, 0.0, SprintPercent(100, 0))
	assert.InDelta(t, 150, SprintPercent(1500, 1000), 1e-9)
}

func TestPlayingTimePercent(t *testing.T) {
	assert.InDelta(t, 100, PlayingTimePercent(810, 9, DefaultMatchDuration), 1e-9)
	assert.InDelta(t, 50, PlayingTimePercent(405, 9, DefaultMatchDuration), 1e-9)
	assert.Equal(t, 0.0, PlayingTimePercent(300, 0, DefaultMatchDuration))
	assert.InDelta(t, 100, PlayingTimePercent(600, 10, 60), 1e-9)
	assert.Greater(t, PlayingTimePercent(900, 9, DefaultMatchDuration), 100.0)
	assert.Equal(t, 0.0, PlayingTimePercent(810, 9, 0))
}

func TestZScore(t *testing.T) {
	t.Run("zero sd always yields zero", func(t *testing.T) {
		for _, v := range []float64{-5, 0, 1.8, 100} {
			for _, m := range []float64{0, 1.8, 4.2} {
				assert.Equal(t, 0.0, ZScore(v, m, 0), "ZScore(%v, %v, 0)", v, m)
			}
		}
	})

	assert.InDelta(t, 2, ZScore(2.0, 1.8, 0.1), 1e-9)
	assert.InDelta(t, -1, ZScore(1.7, 1.8, 0.1), 1e-9)
	assert.Equal(t, 0.0, ZScore(1.8, 1.8, 0.1))
}

func TestTimedZScore_FasterIsPositive(t *testing.T) {
	ref := ReferenceStats{Mean: 1.80, SD: 0.10}

	assert.InDelta(t, 1, timedZScore(1.70, ref), 1e-9)
	assert.InDelta(t, -1, timedZScore(1.90, ref), 1e-9)
	assert.Equal(t, 0.0, timedZScore(1.90, ReferenceStats{Mean: 1.80}))
}

func TestInterpretZScore(t *testing.T) {
	tests := []struct {
		z    float64
		want string
	}{
		{2.0, RatingMuchAbove},
		{1.51, RatingMuchAbove},
		{1.5, RatingAbove},
		{0.51, RatingAbove},
		{0.5, RatingAverage},
		{0, RatingAverage},
		{-0.49, RatingAverage},
		{-0.5, RatingBelow},
		{-1.49, RatingBelow},
		{-1.5, RatingMuchBelow},
		{-3, RatingMuchBelow},
	}

	for _, tt := range tests {
		if got := InterpretZScore(tt.z); got != tt.want {
			t.Errorf("InterpretZScore(%v) = %q, want %q", tt.z, got, tt.want)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		name string
		z    *float64
		want string
	}{
		{"missing", nil, TextNoData},
		{"exactly zero", floatPtr(0), TextNoData},
		{"top band", floatPtr(1.51), GradeExcellent},
		{"above", floatPtr(1.5), RatingAbove},
		{"average", floatPtr(0.3), RatingAverage},
		{"below", floatPtr(-0.5), RatingBelow},
		{"bottom band", floatPtr(-1.5), GradeNeedsImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreLabel(tt.z))
		})
	}
}

func TestGradeTest(t *testing.T) {
	tests := []struct {
		z    float64
		want string
	}{
		{1.5, GradeExcellent},
		{1.01, GradeExcellent},
		{1.0, GradeAverage},
		{0.7, GradeAverage},
		{-0.49, GradeAverage},
		{-0.5, GradeNeedsImprovement},
		{-2, GradeNeedsImprovement},
	}

	for _, tt := range tests {
		if got := GradeTest(tt.z); got != tt.want {
			t.Errorf("GradeTest(%v) = %q, want %q", tt.z, got, tt.want)
		}
	}

	// The two interpreters disagree on purpose around 0.7
	assert.Equal(t, RatingAbove, InterpretZScore(0.7))
	assert.Equal(t, GradeAverage, GradeTest(0.7))
}

func TestEstimators_NoNaNOnGuardedInputs(t *testing.T) {
	for name, v := range map[string]float64{
		"availability": Availability(0, 0),
		"sprint":       SprintPercent(0, 0),
		"playing time": PlayingTimePercent(0, 0, DefaultMatchDuration),
		"zscore":       ZScore(0, 0, 0),
	} {
		assert.False(t, math.IsNaN(v), "%s returned NaN", name)
	}
}

package analysis

// Overall rating labels
const (
	RatingMuchAbove = "Much above average"
	RatingAbove     = "Above average"
	RatingAverage   = "Average"
	RatingBelow     = "Below average"
	RatingMuchBelow = "Much below average"
)

// Per-test grades
const (
	GradeExcellent        = "Excellent"
	GradeAverage          = "Average"
	GradeNeedsImprovement = "Needs improvement"
)

// TextNoData labels a test without a usable Z-score
const TextNoData = "No data"

// InterpretZScore maps a composite Z-score to a five-step rating
func InterpretZScore(z float64) string {
	switch {
	case z > 1.5:
		return RatingMuchAbove
	case z > 0.5:
		return RatingAbove
	case z > -0.5:
		return RatingAverage
	case z > -1.5:
		return RatingBelow
	default:
		return RatingMuchBelow
	}
}

// GradeTest maps a single test's Z-score to the three-step grade shown next to
// each result
func GradeTest(z float64) string {
	switch {
	case z > 1:
		return GradeExcellent
	case z > -0.5:
		return GradeAverage
	default:
		return GradeNeedsImprovement
	}
}

// ScoreLabel is the label printed beside a single test result. It follows the
// InterpretZScore bands but names the extremes by grade, and treats a nil or
// exactly zero score as no data.
func ScoreLabel(z *float64) string {
	if z == nil || *z == 0 {
		return TextNoData
	}
	switch v := *z; {
	case v > 1.5:
		return GradeExcellent
	case v > 0.5:
		return RatingAbove
	case v > -0.5:
		return RatingAverage
	case v > -1.5:
		return RatingBelow
	default:
		return GradeNeedsImprovement
	}
}

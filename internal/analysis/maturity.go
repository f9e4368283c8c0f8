package analysis

// Maturity categories
const (
	CategoryLateBloomer  = "Late Bloomer"
	CategoryEarlyMaturer = "Early Maturer"
	CategoryAverage      = "Average"
)

// Offsets assigned by EstimateBiologicalAge
const (
	offsetLateBloomer  = -0.7
	offsetEarlyMaturer = 0.5
	offsetAverage      = -0.2
)

// Maturity is the result of the biological age estimate
type Maturity struct {
	BiologicalAge  float64
	MaturityOffset float64
	Category       string
}

// EstimateBiologicalAge derives a maturity offset from body proportions.
// This is a heuristic, not an auxological model: low BMI with short stature for
// age reads as late maturation, high BMI with tall stature as early maturation,
// and everything in between lands in the average bucket.
//
// bmi = weight / (height/100)^2, height-for-age = height / calendarAge
func EstimateBiologicalAge(calendarAge, heightCm, weightKg float64) Maturity {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	heightForAge := heightCm / calendarAge

	var offset float64
	switch {
	case bmi < 20 && heightForAge < 10.5:
		offset = offsetLateBloomer
	case bmi > 23 && heightForAge > 11:
		offset = offsetEarlyMaturer
	default:
		offset = offsetAverage
	}

	return Maturity{
		BiologicalAge:  calendarAge + offset,
		MaturityOffset: offset,
		Category:       MaturityCategory(offset),
	}
}

// MaturityCategory classifies a maturity offset. Accepts any offset, not only
// the three EstimateBiologicalAge produces.
func MaturityCategory(offset float64) string {
	switch {
	case offset < -0.5:
		return CategoryLateBloomer
	case offset > 0.3:
		return CategoryEarlyMaturer
	default:
		return CategoryAverage
	}
}

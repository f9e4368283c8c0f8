package analysis

// DefaultMonthsBetween is the assumed interval between height measurements
const DefaultMonthsBetween = 6.0

// EstimateGrowthRate returns the annualized growth rate in cm/year between two
// height samples, or nil when there is no previous sample or no interval.
//
// True Peak Height Velocity needs a fitted growth curve; the latest observed
// rate is used as its approximation.
func EstimateGrowthRate(currentHeight float64, previousHeight *float64, monthsBetween float64) *float64 {
	if previousHeight == nil || monthsBetween == 0 {
		return nil
	}

	rate := (currentHeight - *previousHeight) / monthsBetween * 12
	return &rate
}

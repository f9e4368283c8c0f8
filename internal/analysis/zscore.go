package analysis

// ZScore returns how many standard deviations value lies from mean.
// Returns 0 when sd is 0.
func ZScore(value, mean, sd float64) float64 {
	if sd == 0 {
		return 0
	}
	return (value - mean) / sd
}

// timedZScore scores a timed test so that positive means faster than reference
func timedZScore(seconds float64, ref ReferenceStats) float64 {
	return -ZScore(seconds, ref.Mean, ref.SD)
}

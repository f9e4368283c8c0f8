package analysis

// DefaultMatchDuration is the length of a full match in minutes
const DefaultMatchDuration = 90.0

// None of the load ratios are clamped: a value above 100 or below 0 means the
// inputs disagree, and that is worth showing.

// Availability is the share of training days not lost to injury, in percent.
// Returns 0 when there were no training days.
func Availability(trainingDays, injuryDays float64) float64 {
	if trainingDays == 0 {
		return 0
	}
	return (trainingDays - injuryDays) / trainingDays * 100
}

// SprintPercent is sprint distance as a percentage of total distance.
// Returns 0 when no distance was recorded.
func SprintPercent(sprintMeters, totalDistance float64) float64 {
	if totalDistance == 0 {
		return 0
	}
	return sprintMeters / totalDistance * 100
}

// PlayingTimePercent is minutes played as a percentage of the minutes available
// across all matches. Returns 0 when there were no matches or no match length.
func PlayingTimePercent(minutes, matches, matchDuration float64) float64 {
	if matches == 0 || matchDuration == 0 {
		return 0
	}
	return minutes / (matches * matchDuration) * 100
}

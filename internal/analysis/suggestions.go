package analysis

import (
	"math"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
)

// Training suggestions
const (
	SuggestLateBloomerFocus    = "Late bloomer - focus on technique and tactics, physical development will come later"
	SuggestLateBloomerStrength = "Priority: bodyweight strength training"
	SuggestEarlyMaturer        = "Early maturer - watch body weight control and body proportions"
	SuggestAcceleration        = "Improve acceleration - plyometric and explosive power training"
	SuggestTopSpeed            = "Improve top speed - 30-60m sprint sessions"
	SuggestAgility             = "Improve agility - change-of-direction and coordination drills"
	SuggestCODAsymmetry        = "Change-of-direction asymmetry - work on the weaker side"
	SuggestLowAvailability     = "Low availability - injury prevention, strengthening and recovery work"
	SuggestHighSprintLoad      = "High sprint intensity - monitor load and recovery"
	SuggestLowSprintLoad       = "Low sprint intensity - increase high-intensity running volume"
	SuggestContinueProgram     = "Continue the current training program"
	SuggestMonitorProgress     = "Monitor progress regularly"
)

// suggestionRule appends zero or more suggestions for one aspect of the report
type suggestionRule struct {
	name  string
	apply func(p store.Player, r Results) []string
}

// suggestionRules run in this order; the order is part of the output contract
var suggestionRules = []suggestionRule{
	{"maturity", maturitySuggestions},
	{"acceleration", func(_ store.Player, r Results) []string {
		if below(r.ZScore10m, -0.5) {
			return []string{SuggestAcceleration}
		}
		return nil
	}},
	{"top_speed", func(_ store.Player, r Results) []string {
		if below(r.ZScore30m, -0.5) {
			return []string{SuggestTopSpeed}
		}
		return nil
	}},
	{"agility", codSuggestions},
	{"availability", func(_ store.Player, r Results) []string {
		if below(r.Availability, 80) {
			return []string{SuggestLowAvailability}
		}
		return nil
	}},
	{"sprint_load", func(_ store.Player, r Results) []string {
		switch {
		case above(r.SprintPercent, 12):
			return []string{SuggestHighSprintLoad}
		case below(r.SprintPercent, 8):
			return []string{SuggestLowSprintLoad}
		}
		return nil
	}},
}

// GenerateSuggestions evaluates the rules in order against already computed
// results. When no rule fires the default pair is returned.
//
// An indicator that is exactly 0 never fires a rule: the load estimators return
// 0 when their denominator is missing, which is not a low reading.
func GenerateSuggestions(p store.Player, r Results) []string {
	var suggestions []string
	for _, rule := range suggestionRules {
		suggestions = append(suggestions, rule.apply(p, r)...)
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, SuggestContinueProgram, SuggestMonitorProgress)
	}

	return suggestions
}

func maturitySuggestions(_ store.Player, r Results) []string {
	switch {
	case below(r.MaturityOffset, -0.5):
		return []string{SuggestLateBloomerFocus, SuggestLateBloomerStrength}
	case above(r.MaturityOffset, 0.3):
		return []string{SuggestEarlyMaturer}
	}
	return nil
}

func codSuggestions(_ store.Player, r Results) []string {
	if !nonZero(r.ZScoreCODLeft) || !nonZero(r.ZScoreCODRight) {
		return nil
	}
	left, right := *r.ZScoreCODLeft, *r.ZScoreCODRight

	var out []string
	if (left+right)/2 < -0.5 {
		out = append(out, SuggestAgility)
	}
	if math.Abs(left-right) > 0.5 {
		out = append(out, SuggestCODAsymmetry)
	}
	return out
}

func nonZero(f *float64) bool {
	return f != nil && *f != 0
}

func below(f *float64, threshold float64) bool {
	return nonZero(f) && *f < threshold
}

func above(f *float64, threshold float64) bool {
	return nonZero(f) && *f > threshold
}

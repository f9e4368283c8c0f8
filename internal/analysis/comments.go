package analysis

import (
	"fmt"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
)

// ReportComments returns short remarks for the printed report header
func ReportComments(p store.Player, r Results) []string {
	var comments []string

	if p.InjuryDays != nil && *p.InjuryDays > 0 {
		comments = append(comments, fmt.Sprintf("Missed %g days due to injury", *p.InjuryDays))
	}

	if valueOr(r.SprintPercent, 0) > 12 {
		comments = append(comments, "High physical output")
	}

	if valueOr(r.ZScore10m, 0) > 1 {
		comments = append(comments, "Acceleration above average for biological age")
	}

	if valueOr(r.MaturityOffset, 0) < -0.5 {
		comments = append(comments, "Late bloomer - physical growth potential")
	}

	return comments
}

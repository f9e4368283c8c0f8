package tui

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/config"
)

// Format renders measurements and indicators using the display preferences
type Format struct {
	cfg config.DisplayConfig
}

// NewFormat creates a new Format helper with the given display config
func NewFormat(cfg config.DisplayConfig) Format {
	return Format{cfg: cfg}
}

// Number formats f with the configured number of decimals
func (f Format) Number(v float64) string {
	return strconv.FormatFloat(v, 'f', f.cfg.Decimals, 64)
}

// Optional formats an optional value with a unit, "-" when unset
func (f Format) Optional(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return f.WithUnit(*v, unit)
}

// WithUnit formats a value followed by its unit label
func (f Format) WithUnit(v float64, unit string) string {
	if unit == "" {
		return f.Number(v)
	}
	return f.Number(v) + " " + unit
}

// Seconds formats a test time, always to hundredths
func (f Format) Seconds(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f s", *v)
}

// ZScore formats a Z-score with an explicit sign
func (f Format) ZScore(z *float64) string {
	if z == nil {
		return "-"
	}
	return fmt.Sprintf("%+.2f", *z)
}

// Meters formats a distance with thousands separators, e.g. "12,450 m"
func (f Format) Meters(v *float64) string {
	if v == nil {
		return "-"
	}
	return humanize.Commaf(math.Round(*v)) + " m"
}

// Count formats a whole-number count such as matches or days
func (f Format) Count(v *float64) string {
	if v == nil {
		return "0"
	}
	return humanize.Ftoa(*v)
}

// Trend describes the change from previous to current, e.g. "↑ +4.0 cm".
// Returns "" when there is no previous value.
func (f Format) Trend(current float64, previous *float64, unit string) string {
	if previous == nil || *previous == 0 {
		return ""
	}
	diff := current - *previous
	arrow := "→"
	switch {
	case diff > 0:
		arrow = "↑"
	case diff < 0:
		arrow = "↓"
	}
	sign := ""
	if diff >= 0 {
		sign = "+"
	}
	return arrow + " " + sign + f.WithUnit(diff, unit)
}

// Ago formats a timestamp relative to now, e.g. "3 days ago"
func (f Format) Ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func truncateName(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

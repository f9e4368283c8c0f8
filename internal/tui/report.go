package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/analysis"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/service"
)

const (
	highSprintPercent = 12.0
	lowSprintPercent  = 8.0
)

// ReportModel is the player report screen model
type ReportModel struct {
	roster   *service.RosterService
	format   Format
	playerID string
	report   *service.Report
	viewport viewport.Model
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewReportModel creates a new report model
func NewReportModel(rs *service.RosterService, format Format, playerID string, width, height int) ReportModel {
	m := ReportModel{
		roster:   rs,
		format:   format,
		playerID: playerID,
		loading:  true,
		width:    width,
		height:   height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}

	return m
}

// Init initializes the report screen
func (m ReportModel) Init() tea.Cmd {
	return m.loadReport
}

type reportLoadedMsg struct {
	report *service.Report
	err    error
}

func (m ReportModel) loadReport() tea.Msg {
	report, err := m.roster.GetReport(context.Background(), m.playerID)
	return reportLoadedMsg{report: report, err: err}
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.report = msg.report
		if m.ready && m.report != nil {
			m.viewport.SetContent(RenderReport(m.report, m.format))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.report != nil {
			m.viewport.SetContent(RenderReport(m.report, m.format))
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadReport
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the report screen
func (m ReportModel) View() string {
	if m.loading {
		return "\n  Loading report..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  esc: back to roster  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

// RenderReport renders a full player report. It is shared by the report screen
// and the report command.
func RenderReport(rep *service.Report, f Format) string {
	if rep == nil {
		return "No data"
	}

	sections := []string{
		renderReportHeader(rep, f),
		renderMaturity(rep, f),
		renderPhysical(rep, f),
		renderPerformance(rep, f),
		renderMotorTests(rep, f),
	}

	if chart := renderZProfile(rep.Results); chart != "" {
		sections = append(sections, chart)
	}

	sections = append(sections, renderReview(rep))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderReportHeader(rep *service.Report, f Format) string {
	p := rep.Player
	title := cardTitleStyle.Render(p.FullName())

	var details []string
	if p.Position != "" {
		details = append(details, p.Position)
	}
	if p.ClubSince != 0 {
		details = append(details, fmt.Sprintf("at the club since %d", p.ClubSince))
	}
	if p.Education != "" {
		details = append(details, p.Education)
	}

	lines := []string{"", title}
	if len(details) > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(textColor).Bold(true).Render(strings.Join(details, "  •  ")))
	}
	if !p.UpdatedAt.IsZero() {
		lines = append(lines, mutedStyle.Render("Updated "+f.Ago(p.UpdatedAt)))
	}
	lines = append(lines, "")

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMaturity(rep *service.Report, f Format) string {
	p, r := rep.Player, rep.Results

	lines := []string{sectionTitleStyle.Render("Biological Maturity")}

	lines = append(lines, RenderMetric("Calendar age", f.WithUnit(p.CalendarAge, "yrs"), ""))
	lines = append(lines, RenderMetric("Biological age", f.Optional(r.BiologicalAge, "yrs"), ""))

	offsetTrend := ""
	if r.MaturityOffset != nil {
		offsetTrend = "↑"
		if *r.MaturityOffset < 0 {
			offsetTrend = "↓"
		}
	}
	lines = append(lines, RenderMetric("Maturity offset", f.ZScore(r.MaturityOffset)+" yrs", offsetTrend))

	if r.MaturityCategory != "" {
		lines = append(lines, RenderMetric("Category", r.MaturityCategory, ""))
	}

	if r.MaturityOffset != nil && *r.MaturityOffset < -0.5 {
		lines = append(lines, RenderBanner(bannerInfo, analysis.CategoryLateBloomer,
			"maturing later than peers. Significant physical development is expected in the coming years."))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderPhysical(rep *service.Report, f Format) string {
	p, r := rep.Player, rep.Results

	lines := []string{sectionTitleStyle.Render("Physical Parameters")}

	lines = append(lines, RenderMetric("Height", f.WithUnit(p.Height, "cm"), f.Trend(p.Height, p.PreviousHeight, "cm")))
	lines = append(lines, RenderMetric("Weight", f.WithUnit(p.Weight, "kg"), f.Trend(p.Weight, p.PreviousWeight, "kg")))

	if p.BodyFat != nil && *p.BodyFat != 0 {
		lines = append(lines, RenderMetric("Body fat", f.WithUnit(*p.BodyFat, "%"), ""))
	}
	if r.GrowthRate != nil {
		lines = append(lines, RenderMetric("Growth rate (PHV)", f.WithUnit(*r.GrowthRate, "cm/yr"), ""))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderPerformance(rep *service.Report, f Format) string {
	p, r := rep.Player, rep.Results

	lines := []string{sectionTitleStyle.Render("Season Performance")}

	lines = append(lines, RenderMetric("Availability", f.Optional(r.Availability, "%"), ""))
	lines = append(lines, RenderMetric("Matches / minutes", f.Count(p.Matches)+" / "+f.Count(p.Minutes), ""))
	lines = append(lines, RenderMetric("Playing time", f.Optional(r.PlayingTimePercent, "%"), ""))

	if nonZero(p.TotalDistance) && nonZero(p.SprintDistance) {
		lines = append(lines, RenderMetric("Distance", f.Meters(p.TotalDistance), ""))
		lines = append(lines, RenderMetric("Sprint distance", f.Meters(p.SprintDistance), ""))

		trend := ""
		if r.SprintPercent != nil {
			switch {
			case *r.SprintPercent > highSprintPercent:
				trend = "↑"
			case *r.SprintPercent < lowSprintPercent:
				trend = "↓"
			}
		}
		lines = append(lines, RenderMetric("Sprint share", f.Optional(r.SprintPercent, "%"), trend))
	}

	if p.InjuryDays != nil && *p.InjuryDays > 0 {
		lines = append(lines, RenderBanner(bannerDanger, "",
			fmt.Sprintf("Missed %s days due to injury.", f.Count(p.InjuryDays))))
	}
	if r.SprintPercent != nil && *r.SprintPercent > highSprintPercent {
		lines = append(lines, RenderBanner(bannerSuccess, "High physical output",
			"sprint share above the squad norm."))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderMotorTests(rep *service.Report, f Format) string {
	p, r := rep.Player, rep.Results

	lines := []string{sectionTitleStyle.Render("Motor Tests")}

	tests := []struct {
		label   string
		seconds *float64
		z       *float64
		club    *float64
	}{
		{"Sprint 10m", p.Sprint10m, r.ZScore10m, p.ClubRating10m},
		{"Sprint 30m", p.Sprint30m, r.ZScore30m, p.ClubRating30m},
		{"COD left", p.CODLeft, r.ZScoreCODLeft, nil},
		{"COD right", p.CODRight, r.ZScoreCODRight, nil},
	}

	shown := 0
	for _, t := range tests {
		if !nonZero(t.seconds) {
			continue
		}
		shown++

		lines = append(lines, RenderMetric(t.label, f.Seconds(t.seconds), ""))

		if t.z == nil {
			lines = append(lines, "  "+mutedStyle.Render("Not scored: biological age unknown"))
		} else {
			grade := analysis.GradeTest(*t.z)
			lines = append(lines, "  "+GradeStyle(grade).Render(analysis.ScoreLabel(t.z))+
				mutedStyle.Render("  Z-score "+f.ZScore(t.z)))
		}

		if t.club != nil {
			lines = append(lines, "  "+mutedStyle.Render("Club rating "+f.Count(t.club)+"/10"))
		}
	}

	if shown == 0 {
		lines = append(lines, mutedStyle.Render("  No tests recorded"))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// renderZProfile plots the available Z-scores in test order; needs two points
func renderZProfile(r analysis.Results) string {
	var data []float64
	var labels []string
	for _, t := range []struct {
		label string
		z     *float64
	}{
		{"10m", r.ZScore10m},
		{"30m", r.ZScore30m},
		{"COD-L", r.ZScoreCODLeft},
		{"COD-R", r.ZScoreCODRight},
	} {
		if t.z != nil {
			data = append(data, *t.z)
			labels = append(labels, t.label)
		}
	}

	if len(data) < 2 {
		return ""
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(6),
		asciigraph.Width(40),
		asciigraph.Precision(1),
		asciigraph.LowerBound(-2),
		asciigraph.UpperBound(2),
		asciigraph.Caption(strings.Join(labels, " → ")),
	)

	lines := []string{sectionTitleStyle.Render("Z-score Profile"), chart, ""}
	return strings.Join(lines, "\n")
}

func renderReview(rep *service.Report) string {
	p, r := rep.Player, rep.Results

	lines := []string{sectionTitleStyle.Render("Mid-season Review")}

	lines = append(lines, RenderMetric("Overall rating", RatingStyle(r.OverallRating).Render(r.OverallRating), ""))

	lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("Training suggestions"))
	for _, s := range r.Suggestions {
		lines = append(lines, "  • "+s)
	}

	if len(rep.Comments) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("Report comments"))
		for _, c := range rep.Comments {
			lines = append(lines, "  • "+c)
		}
	}

	if p.Notes != "" {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("Coach notes"))
		lines = append(lines, mutedStyle.Render(p.Notes))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func nonZero(v *float64) bool {
	return v != nil && *v != 0
}

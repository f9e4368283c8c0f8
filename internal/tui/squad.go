package tui

import (
	"context"
	"fmt"
	"math"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/analysis"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/service"
)

// SquadModel is the squad overview screen model
type SquadModel struct {
	roster  *service.RosterService
	format  Format
	data    *service.SquadData
	loading bool
	err     error
}

// NewSquadModel creates a new squad model
func NewSquadModel(rs *service.RosterService, format Format) SquadModel {
	return SquadModel{
		roster:  rs,
		format:  format,
		loading: true,
	}
}

// Init initializes the squad screen
func (m SquadModel) Init() tea.Cmd {
	return m.loadData
}

func (m SquadModel) loadData() tea.Msg {
	data, err := m.roster.GetSquadData(context.Background())
	if err != nil {
		return squadDataMsg{err: err}
	}
	return squadDataMsg{data: data}
}

type squadDataMsg struct {
	data *service.SquadData
	err  error
}

// Update handles messages
func (m SquadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case squadDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the squad overview
func (m SquadModel) View() string {
	if m.loading {
		return "\n  Loading squad..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || m.data.Summary.Players == 0 {
		return "\n  No players yet. Import a roster with: motorprep import squad.yaml"
	}

	var sections []string

	overview := m.renderOverviewCard()
	ratings := renderCountsCard("Overall Rating", m.data.Summary.ByRating, []string{
		analysis.RatingMuchAbove,
		analysis.RatingAbove,
		analysis.RatingAverage,
		analysis.RatingBelow,
		analysis.RatingMuchBelow,
	})
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, overview, "  ", ratings))

	sections = append(sections, RenderSquadTests(m.data.Summary))
	sections = append(sections, m.renderRecentPlayers())

	help := statusStyle.Render("Press 'r' to refresh, '2' for the roster")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SquadModel) renderOverviewCard() string {
	s := m.data.Summary
	title := cardTitleStyle.Render("Squad")

	lines := []string{
		RenderMetric("Players", fmt.Sprintf("%d", s.Players), ""),
		RenderMetric("Avg availability", m.format.WithUnit(s.AvgAvailability, "%"), ""),
		"  " + RenderProgressBar(s.AvgAvailability/100, 24),
		"",
	}
	for _, cat := range []string{analysis.CategoryLateBloomer, analysis.CategoryAverage, analysis.CategoryEarlyMaturer} {
		lines = append(lines, RenderMetric(cat, fmt.Sprintf("%d", s.ByMaturity[cat]), ""))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// renderCountsCard lists counts in the given order, then any other keys sorted
func renderCountsCard(title string, counts map[string]int, order []string) string {
	known := make(map[string]bool, len(order))
	for _, k := range order {
		known[k] = true
	}
	var extra []string
	for k := range counts {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	var lines []string
	for _, k := range append(order, extra...) {
		lines = append(lines, RenderMetric(k, fmt.Sprintf("%d", counts[k]), ""))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, cardTitleStyle.Render(title), content))
}

// RenderSquadTests renders the per-test Z-score table
func RenderSquadTests(s analysis.SquadSummary) string {
	title := cardTitleStyle.Render("Motor Tests (Z-scores)")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %7s  %7s  %7s  %-18s", "Test", "Players", "Mean", "SD", "Squad level"))
	rows := []string{header}

	for _, t := range []struct {
		label   string
		summary analysis.TestSummary
	}{
		{"Sprint 10m", s.Sprint10m},
		{"Sprint 30m", s.Sprint30m},
		{"COD left", s.CODLeft},
		{"COD right", s.CODRight},
	} {
		mean, sd, level := "-", "-", "-"
		if t.summary.Count > 0 {
			mean = fmt.Sprintf("%+.2f", t.summary.Mean)
			level = analysis.InterpretZScore(t.summary.Mean)
		}
		if t.summary.Count > 1 && !math.IsNaN(t.summary.StdDev) {
			sd = fmt.Sprintf("%.2f", t.summary.StdDev)
		}
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-12s  %7d  %7s  %7s  %-18s",
			t.label, t.summary.Count, mean, sd, level)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m SquadModel) renderRecentPlayers() string {
	title := cardTitleStyle.Render("Recently Updated")

	if len(m.data.Recent) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No players yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-22s  %-12s  %-18s  %-14s", "Name", "Position", "Rating", "Updated"))
	rows := []string{header}

	for _, pr := range m.data.Recent {
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-22s  %-12s  %-18s  %-14s",
			truncateName(pr.Player.FullName(), 22),
			truncateName(pr.Player.Position, 12),
			pr.Results.OverallRating,
			m.format.Ago(pr.Player.UpdatedAt),
		)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

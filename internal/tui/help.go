package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Squad overview"},
		{"2", "Roster"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Roster", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"pgdn / pgup", "Jump a page"},
		{"enter", "Open player report"},
		{"d", "Delete player (asks y/n)"},
		{"r", "Refresh"},
	}))

	sections = append(sections, m.renderSection("Report", []keyHelp{
		{"j / k", "Scroll"},
		{"r", "Recompute"},
	}))

	sections = append(sections, m.renderIndicatorsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	lines := []string{"", sectionTitleStyle.Render(title)}

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderIndicatorsHelp() string {
	lines := []string{"", sectionTitleStyle.Render("Indicators Explained"), ""}

	indicators := []struct {
		name string
		desc string
	}{
		{"Biological age", "Calendar age adjusted by a height/weight maturity offset."},
		{"Maturity offset", "Below -0.5 = late bloomer, above 0.3 = early maturer."},
		{"Growth rate (PHV)", "Height gain per year since the previous measurement."},
		{"Availability", "Share of training days not lost to injury."},
		{"Z-score", "Test result against peers of the same biological age. Positive = faster."},
		{"Overall rating", "Mean of the four test Z-scores; an untested test counts as 0."},
	}

	for _, ind := range indicators {
		lines = append(lines, "  "+helpKeyStyle.Render(ind.name))
		lines = append(lines, "  "+mutedStyle.Render(ind.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

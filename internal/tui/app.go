package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/config"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenSquad Screen = iota
	ScreenRoster
	ScreenReport
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	squad  SquadModel
	roster RosterModel
	report ReportModel
	help   HelpModel

	rosterService *service.RosterService
	format        Format

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(rosterService *service.RosterService, display config.DisplayConfig) *App {
	format := NewFormat(display)
	return &App{
		screen:        ScreenSquad,
		rosterService: rosterService,
		format:        format,
		squad:         NewSquadModel(rosterService, format),
		roster:        NewRosterModel(rosterService, format),
		help:          NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.squad.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The delete prompt owns the keyboard until answered
		if a.screen != ScreenRoster || !a.roster.confirm {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenSquad
				a.squad = NewSquadModel(a.rosterService, a.format)
				return a, a.squad.Init()
			case "2":
				a.screen = ScreenRoster
				return a, a.roster.Init()
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				switch a.screen {
				case ScreenHelp:
					a.screen = a.prevScreen
					return a, nil
				case ScreenReport:
					a.screen = ScreenRoster
					return a, a.roster.Init()
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenReportMsg:
		a.screen = ScreenReport
		a.report = NewReportModel(a.rosterService, a.format, msg.PlayerID, a.width, a.height)
		return a, a.report.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenSquad:
		var m tea.Model
		m, cmd = a.squad.Update(msg)
		a.squad = m.(SquadModel)
	case ScreenRoster:
		var m tea.Model
		m, cmd = a.roster.Update(msg)
		a.roster = m.(RosterModel)
	case ScreenReport:
		var m tea.Model
		m, cmd = a.report.Update(msg)
		a.report = m.(ReportModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenSquad:
		content = a.squad.View()
	case ScreenRoster:
		content = a.roster.View()
	case ScreenReport:
		content = a.report.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Motor Preparation Analyzer")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Squad", ScreenSquad},
		{"2", "Roster", ScreenRoster},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen || (item.screen == ScreenRoster && a.screen == ScreenReport)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

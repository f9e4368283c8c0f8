package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/service"
)

// RosterModel is the player list screen model
type RosterModel struct {
	roster   *service.RosterService
	format   Format
	players  []service.PlayerWithResults
	cursor   int // index into players
	offset   int // first visible row
	pageSize int
	loading  bool
	confirm  bool // waiting for y/n on delete
	status   string
	err      error
}

// NewRosterModel creates a new roster model
func NewRosterModel(rs *service.RosterService, format Format) RosterModel {
	return RosterModel{
		roster:   rs,
		format:   format,
		pageSize: 15,
		loading:  true,
	}
}

// Init initializes the roster screen
func (m RosterModel) Init() tea.Cmd {
	return m.loadRoster
}

type rosterLoadedMsg struct {
	players []service.PlayerWithResults
	err     error
}

type playerDeletedMsg struct {
	name string
	err  error
}

// OpenReportMsg asks the app to show a player's report
type OpenReportMsg struct {
	PlayerID string
}

func (m RosterModel) loadRoster() tea.Msg {
	players, err := m.roster.ListPlayers(context.Background())
	return rosterLoadedMsg{players: players, err: err}
}

func (m RosterModel) deleteSelected() tea.Cmd {
	p := m.players[m.cursor].Player
	return func() tea.Msg {
		err := m.roster.DeletePlayer(context.Background(), p.ID)
		return playerDeletedMsg{name: p.FullName(), err: err}
	}
}

// Update handles messages
func (m RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.players = msg.players
		if m.cursor >= len(m.players) {
			m.cursor = max(len(m.players)-1, 0)
		}
		m.clampOffset()

	case playerDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Deleted " + msg.name
		m.loading = true
		return m, m.loadRoster

	case tea.KeyMsg:
		if m.confirm {
			m.confirm = false
			if msg.String() == "y" && len(m.players) > 0 {
				return m, m.deleteSelected()
			}
			m.status = ""
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.players)-1 {
				m.cursor++
			}
		case "pgup":
			m.cursor = max(m.cursor-m.pageSize, 0)
		case "pgdown":
			m.cursor = min(m.cursor+m.pageSize, max(len(m.players)-1, 0))
		case "r":
			m.loading = true
			m.status = ""
			return m, m.loadRoster
		case "d":
			if len(m.players) > 0 {
				m.confirm = true
				m.status = fmt.Sprintf("Delete %s? (y/n)", m.players[m.cursor].Player.FullName())
			}
		case "enter":
			if len(m.players) > 0 && m.cursor < len(m.players) {
				playerID := m.players[m.cursor].Player.ID
				return m, func() tea.Msg {
					return OpenReportMsg{PlayerID: playerID}
				}
			}
		}
		m.clampOffset()
	}
	return m, nil
}

// clampOffset keeps the cursor inside the visible page
func (m *RosterModel) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize {
		m.offset = m.cursor - m.pageSize + 1
	}
}

// View renders the roster
func (m RosterModel) View() string {
	if m.loading {
		return "\n  Loading roster..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.players) == 0 {
		return "\n  No players yet. Import a roster with: motorprep import squad.yaml"
	}

	var sections []string

	end := min(m.offset+m.pageSize, len(m.players))
	title := cardTitleStyle.Render(fmt.Sprintf("Roster (%d-%d of %d)", m.offset+1, end, len(m.players)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("  %-22s  %-12s  %5s  %5s  %-13s  %6s  %-18s  %-14s",
		"Name", "Position", "Age", "Bio", "Maturity", "10m Z", "Rating", "Updated"))
	sections = append(sections, header)

	for i := m.offset; i < end; i++ {
		p := m.players[i].Player
		r := m.players[i].Results

		bio := "-"
		if r.BiologicalAge != nil {
			bio = fmt.Sprintf("%.1f", *r.BiologicalAge)
		}
		maturity := r.MaturityCategory
		if maturity == "" {
			maturity = "-"
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-22s  %-12s  %5.1f  %5s  %-13s  %6s  %-18s  %-14s",
			cursor,
			truncateName(p.FullName(), 22),
			truncateName(p.Position, 12),
			p.CalendarAge,
			bio,
			maturity,
			m.format.ZScore(r.ZScore10m),
			r.OverallRating,
			m.format.Ago(p.UpdatedAt),
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	if m.status != "" {
		sections = append(sections, warningStyle.Render("\n  "+m.status))
	}

	help := statusStyle.Render("\n  enter: view report  j/k: navigate  pgup/pgdn: page  d: delete  r: refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var tableCellStyle = lipgloss.NewStyle().PaddingRight(2)

// RenderTable lays out rows under headers as plain aligned columns, suitable
// for piping from the CLI
func RenderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Wrap(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return tableCellStyle }).
		Headers(headers...).
		Rows(rows...).
		Render()
}

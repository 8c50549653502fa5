package calculator

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the three fields stacked vertically with the key help below
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.fieldWidth()
	rows := make([]string, 0, len(m.fields)+1)
	for _, f := range m.fields {
		rows = append(rows, m.styles.renderTitledBox(f.Role().Title(), f.View(), width, f.Visual()))
	}
	rows = append(rows, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

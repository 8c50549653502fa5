package calculator

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pctchange/internal/config"
	"github.com/muurk/pctchange/internal/field"
)

// Layout constants
const (
	DefaultFieldWidth = 40 // Used until the terminal reports its size
	MinFieldWidth     = 12 // Narrowest box that still fits "percent change"
)

// Styles holds the lipgloss styles derived from a theme
type Styles struct {
	Border         lipgloss.Border
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	Title          lipgloss.Style
	InactiveTitle  lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles builds styles from theme colors. A nil theme uses the defaults.
func NewStyles(theme *config.Theme) Styles {
	if theme == nil {
		theme = config.DefaultTheme()
	}

	inactive := themeColor(theme.InactiveBorder)

	return Styles{
		Border:         lipgloss.RoundedBorder(),
		ActiveBorder:   lipgloss.NewStyle().Foreground(themeColor(theme.ActiveBorder)),
		InactiveBorder: lipgloss.NewStyle().Foreground(inactive),
		Title:          lipgloss.NewStyle().Foreground(themeColor(theme.Title)).Bold(true),
		InactiveTitle:  lipgloss.NewStyle().Foreground(inactive),
		Help:           lipgloss.NewStyle().Foreground(themeColor(theme.Help)),
	}
}

// themeColor maps a theme value to a color; empty means the terminal default
func themeColor(value string) lipgloss.TerminalColor {
	if value == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(value)
}

// applyHelp colors the help footer
func (s Styles) applyHelp(h *help.Model) {
	h.Styles.ShortKey = s.Help.Bold(true)
	h.Styles.ShortDesc = s.Help
	h.Styles.ShortSeparator = s.Help
	h.Styles.FullKey = s.Help.Bold(true)
	h.Styles.FullDesc = s.Help
	h.Styles.FullSeparator = s.Help
}

// borderFor returns the border and title styles for a visual state
func (s Styles) borderFor(v field.VisualState) (lipgloss.Style, lipgloss.Style) {
	if v == field.VisualActive {
		return s.ActiveBorder, s.Title
	}
	return s.InactiveBorder, s.InactiveTitle
}

// renderTitledBox draws content inside a border with title set into the top edge:
//
//	╭─ initial ──────╮
//	│100             │
//	╰────────────────╯
//
// width is the total width including the border.
func (s Styles) renderTitledBox(title, content string, width int, v field.VisualState) string {
	borderStyle, titleStyle := s.borderFor(v)
	b := s.Border

	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	label := " " + title + " "
	fill := inner - 1 - lipgloss.Width(label)
	if fill < 0 {
		// Title does not fit: draw a plain top edge
		label = ""
		fill = inner - 1
	}

	top := borderStyle.Render(b.TopLeft+b.Top) +
		titleStyle.Render(label) +
		borderStyle.Render(strings.Repeat(b.Top, fill)+b.TopRight)

	body := lipgloss.NewStyle().
		Border(b, false, true, true, true).
		BorderForeground(borderStyle.GetForeground()).
		Width(inner).
		Render(content)

	return top + "\n" + body
}

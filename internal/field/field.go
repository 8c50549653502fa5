package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field is one editable, single-row text field
type Field struct {
	role   Role
	editor textarea.Model
	visual VisualState
}

// Snapshot captures a field's text and cursor position so an edit can be undone
type Snapshot struct {
	text string
	row  int
	col  int
}

// Text returns the captured text
func (s Snapshot) Text() string {
	return s.text
}

// New creates an empty, inactive field for the given role
func New(role Role) Field {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(1)

	// Newlines are never part of a number
	ta.KeyMap.InsertNewline.SetEnabled(false)

	// No highlighted cursor line, reversed cursor cell
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.Cursor.Style = lipgloss.NewStyle().Reverse(true)

	ta.Blur()

	return Field{
		role:   role,
		editor: ta,
		visual: VisualInactive,
	}
}

// Role returns the field's role
func (f Field) Role() Role {
	return f.role
}

// Visual returns the field's current visual state
func (f Field) Visual() VisualState {
	return f.visual
}

// Active reports whether the field is the one receiving input
func (f Field) Active() bool {
	return f.visual == VisualActive
}

// SetActive switches the field between active and inactive.
// The returned command starts cursor blinking when the field is activated.
func (f *Field) SetActive(active bool) tea.Cmd {
	if active {
		f.visual = VisualActive
		return f.editor.Focus()
	}
	f.visual = VisualInactive
	f.editor.Blur()
	return nil
}

// SetWidth sets the editor width in cells
func (f *Field) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	f.editor.SetWidth(width)
}

// Text returns the field content with lines joined by "\n"
func (f Field) Text() string {
	return f.editor.Value()
}

// Lines returns the field content as a list of lines
func (f Field) Lines() []string {
	return strings.Split(f.editor.Value(), "\n")
}

// Update forwards a message to the editor and reports whether the text changed
func (f *Field) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := f.editor.Value()
	var cmd tea.Cmd
	f.editor, cmd = f.editor.Update(msg)
	return f.editor.Value() != before, cmd
}

// InsertChar inserts r at the cursor
func (f *Field) InsertChar(r rune) bool {
	changed, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return changed
}

// DeleteCharBeforeCursor removes the character left of the cursor
func (f *Field) DeleteCharBeforeCursor() bool {
	changed, _ := f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	return changed
}

// MoveCursor moves the cursor without changing the text
func (f *Field) MoveCursor(dir Direction) bool {
	var msg tea.KeyMsg
	switch dir {
	case CursorLeft:
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case CursorRight:
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case CursorStart:
		msg = tea.KeyMsg{Type: tea.KeyHome}
	case CursorEnd:
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return false
	}
	changed, _ := f.Update(msg)
	return changed
}

// ReplaceAll clears the field and inserts text, leaving the cursor at the end
func (f *Field) ReplaceAll(text string) {
	f.editor.Reset()
	f.editor.InsertString(text)
}

// Cursor returns the cursor's row and column
func (f Field) Cursor() (row, col int) {
	info := f.editor.LineInfo()
	return f.editor.Line(), info.StartColumn + info.ColumnOffset
}

// Snapshot captures the current text and cursor
func (f Field) Snapshot() Snapshot {
	row, col := f.Cursor()
	return Snapshot{text: f.Text(), row: row, col: col}
}

// Restore puts back the text and cursor captured by Snapshot
func (f *Field) Restore(s Snapshot) {
	f.ReplaceAll(s.text)
	for f.editor.Line() > s.row {
		f.editor.CursorUp()
	}
	f.editor.SetCursor(s.col)
}

// View renders the editor content without any border
func (f Field) View() string {
	return f.editor.View()
}

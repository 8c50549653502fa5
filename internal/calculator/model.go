package calculator

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/pctchange/internal/config"
	"github.com/muurk/pctchange/internal/field"
	"github.com/muurk/pctchange/internal/focus"
	"github.com/muurk/pctchange/internal/logging"
	"github.com/muurk/pctchange/internal/numeric"
)

// Options configures a new calculator Model
type Options struct {
	Theme      *config.Theme // Colors; nil uses the defaults
	FieldWidth int           // Fixed field width; 0 follows the terminal
	Initial    string        // Prefilled initial value (must be empty or a number)
	Final      string        // Prefilled final value (must be empty or a number)
}

// Model is the whole application state: the three fields and the focus.
// It implements tea.Model.
type Model struct {
	fields [3]field.Field
	focus  focus.Controller

	keys   KeyMap
	help   help.Model
	styles Styles

	fixedWidth int
	width      int
	quitting   bool
}

// New creates a calculator with the initial field focused.
// Prefilled values go through the same validation as typed input.
func New(opts Options) (Model, error) {
	m := Model{
		focus:      focus.New(len(field.Roles)),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     NewStyles(opts.Theme),
		fixedWidth: opts.FieldWidth,
		width:      DefaultFieldWidth,
	}
	m.styles.applyHelp(&m.help)

	for i, role := range field.Roles {
		m.fields[i] = field.New(role)
	}
	m.focus.Sync(m.targets())
	m.resize()

	prefill := []struct {
		role field.Role
		text string
	}{
		{field.Initial, opts.Initial},
		{field.Final, opts.Final},
	}
	for _, p := range prefill {
		if p.text == "" {
			continue
		}
		if _, err := numeric.Parse(p.text); err != nil {
			return Model{}, fmt.Errorf("%s value: %w", p.role.Title(), err)
		}
		m.fields[p.role].ReplaceAll(p.text)
	}
	m.derive()

	return m, nil
}

// Init starts the cursor blinking in the focused field
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update dispatches one message. Keys are checked in priority order:
// quit, previous field, next field, swallowed newlines. Anything else is an
// edit of the focused field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(m.focus.Retreat)

		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(m.focus.Advance)

		case key.Matches(msg, m.keys.Newline):
			return m, nil
		}
	}

	return m, m.edit(msg)
}

// moveFocus applies a focus move and logs it
func (m *Model) moveFocus(move func([]focus.Target) tea.Cmd) tea.Cmd {
	from := m.fields[m.focus.Index()].Role()
	cmd := move(m.targets())
	logging.LogFocusChange(from.Title(), m.fields[m.focus.Index()].Role().Title())
	return cmd
}

// edit forwards msg to the focused field and runs the acceptance check when
// the text changed
func (m *Model) edit(msg tea.Msg) tea.Cmd {
	active := &m.fields[m.focus.Index()]
	before := active.Snapshot()

	changed, cmd := active.Update(msg)
	if changed {
		m.acceptEdit(active, before)
	}
	return cmd
}

// acceptEdit keeps an edit whose result is empty or a number and rolls back
// anything else to before. A deletion that leaves a partial number such as
// "-" or "1e" keeps deleting backwards until the text is a number or empty,
// so backspace always makes progress. Accepted edits to Initial or Final
// recompute the percent change.
func (m *Model) acceptEdit(f *field.Field, before field.Snapshot) {
	text := f.Text()
	if len(text) < len(before.Text()) {
		for text != "" && !numeric.IsValid(text) && f.DeleteCharBeforeCursor() {
			text = f.Text()
		}
	}

	if text != "" {
		if _, err := numeric.Parse(text); err != nil {
			f.Restore(before)
			logging.LogEditRejected(f.Role().Title(), text, before.Text(), err)
			return
		}
	}

	if f.Role().IsInput() {
		m.derive()
	}
}

// derive rewrites PercentChange when both inputs hold numbers.
// Returns false and leaves PercentChange untouched otherwise.
func (m *Model) derive() bool {
	initial := m.fields[field.Initial].Text()
	final := m.fields[field.Final].Text()

	result, err := numeric.Compute(initial, final)
	if err != nil {
		return false
	}

	m.fields[field.PercentChange].ReplaceAll(result)
	logging.LogDerivation(initial, final, result)
	return true
}

// targets exposes the fields to the focus controller
func (m *Model) targets() []focus.Target {
	targets := make([]focus.Target, len(m.fields))
	for i := range m.fields {
		targets[i] = &m.fields[i]
	}
	return targets
}

// fieldWidth returns the total box width, border included
func (m Model) fieldWidth() int {
	width := m.width
	if m.fixedWidth > 0 {
		width = m.fixedWidth
	}
	if width < MinFieldWidth {
		width = MinFieldWidth
	}
	return width
}

// resize fits the editors inside their borders
func (m *Model) resize() {
	inner := m.fieldWidth() - 2
	for i := range m.fields {
		m.fields[i].SetWidth(inner)
	}
}

// Field returns the field with the given role
func (m Model) Field(role field.Role) field.Field {
	return m.fields[role]
}

// Focused returns the role of the field receiving input
func (m Model) Focused() field.Role {
	return m.fields[m.focus.Index()].Role()
}

// Quitting reports whether Esc has been pressed
func (m Model) Quitting() bool {
	return m.quitting
}

// Report writes the final input values in the format printed at exit:
//
//	Left textarea: ["100"]
//	Right textarea: ["150"]
func (m Model) Report(w io.Writer) error {
	initial := m.fields[field.Initial].Lines()
	final := m.fields[field.Final].Lines()

	logging.LogSession("end",
		zap.Strings("initial", initial),
		zap.Strings("final", final),
	)

	if _, err := fmt.Fprintf(w, "Left textarea: %q\n", initial); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Right textarea: %q\n", final)
	return err
}

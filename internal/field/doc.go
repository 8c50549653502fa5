// Package field implements the editable text fields of the calculator.
//
// A Field wraps a bubbles/textarea editor configured as a single visible row
// with newline insertion disabled. The editor stores text as a list of lines,
// so Text joins them with "\n" and Lines exposes the raw list for reporting.
//
// Fields do not restrict what characters can be typed. The calculator
// validates the whole text after each change and uses Snapshot/Restore to
// undo edits it rejects.
//
// # Visual State
//
// Each field is either VisualActive or VisualInactive. Only the active field
// has editor focus, so only the active field accepts key input and shows a
// cursor. Rendering code picks border styles from the visual state.
//
// # Editing Operations
//
// InsertChar, DeleteCharBeforeCursor, MoveCursor and Update forward input to
// the editor and report whether the text changed. They have no effect on an
// inactive field. ReplaceAll rewrites the content regardless of focus and is
// how derived values are written.
package field

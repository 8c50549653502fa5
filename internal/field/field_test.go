package field

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(f *Field, text string) {
	for _, r := range text {
		f.InsertChar(r)
	}
}

func TestNew(t *testing.T) {
	f := New(Final)

	if f.Role() != Final {
		t.Errorf("Role() = %v, want %v", f.Role(), Final)
	}
	if f.Active() {
		t.Error("Expected new field to be inactive")
	}
	if f.Visual() != VisualInactive {
		t.Errorf("Visual() = %v, want %v", f.Visual(), VisualInactive)
	}
	if f.Text() != "" {
		t.Errorf("Text() = %q, want empty", f.Text())
	}
	if got := f.Lines(); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("Lines() = %q, want [\"\"]", got)
	}
}

func TestField_SetActive(t *testing.T) {
	f := New(Initial)

	f.SetActive(true)
	if !f.Active() || f.Visual() != VisualActive {
		t.Error("Expected field to be active after SetActive(true)")
	}

	f.SetActive(false)
	if f.Active() || f.Visual() != VisualInactive {
		t.Error("Expected field to be inactive after SetActive(false)")
	}
}

func TestField_InactiveIgnoresInput(t *testing.T) {
	f := New(Initial)

	if f.InsertChar('1') {
		t.Error("InsertChar() on inactive field reported a change")
	}
	if f.Text() != "" {
		t.Errorf("Text() = %q, want empty", f.Text())
	}
}

func TestField_Editing(t *testing.T) {
	f := New(Initial)
	f.SetActive(true)

	if !f.InsertChar('1') {
		t.Error("InsertChar('1') reported no change")
	}
	typeText(&f, "23")
	if f.Text() != "123" {
		t.Fatalf("Text() = %q, want %q", f.Text(), "123")
	}

	if f.MoveCursor(CursorLeft) {
		t.Error("MoveCursor() reported a text change")
	}
	f.InsertChar('.')
	if f.Text() != "12.3" {
		t.Errorf("Text() after insert in middle = %q, want %q", f.Text(), "12.3")
	}

	if !f.DeleteCharBeforeCursor() {
		t.Error("DeleteCharBeforeCursor() reported no change")
	}
	if f.Text() != "123" {
		t.Errorf("Text() after delete = %q, want %q", f.Text(), "123")
	}

	f.MoveCursor(CursorStart)
	if f.DeleteCharBeforeCursor() {
		t.Error("DeleteCharBeforeCursor() at start of field reported a change")
	}
	f.InsertChar('-')
	if f.Text() != "-123" {
		t.Errorf("Text() after insert at start = %q, want %q", f.Text(), "-123")
	}

	f.MoveCursor(CursorEnd)
	f.InsertChar('4')
	if f.Text() != "-1234" {
		t.Errorf("Text() after insert at end = %q, want %q", f.Text(), "-1234")
	}
}

func TestField_NewlineDisabled(t *testing.T) {
	f := New(Initial)
	f.SetActive(true)
	typeText(&f, "5")

	changed, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if changed {
		t.Error("Enter changed the field text")
	}
	if got := f.Lines(); !reflect.DeepEqual(got, []string{"5"}) {
		t.Errorf("Lines() = %q, want [\"5\"]", got)
	}
}

func TestField_ReplaceAll(t *testing.T) {
	f := New(PercentChange)
	f.ReplaceAll("0.5")
	if f.Text() != "0.5" {
		t.Errorf("Text() = %q, want %q", f.Text(), "0.5")
	}

	f.ReplaceAll("-Inf")
	if f.Text() != "-Inf" {
		t.Errorf("Text() after second ReplaceAll = %q, want %q", f.Text(), "-Inf")
	}

	_, col := f.Cursor()
	if col != len("-Inf") {
		t.Errorf("cursor column = %d, want %d", col, len("-Inf"))
	}
}

func TestField_SnapshotRestore(t *testing.T) {
	f := New(Initial)
	f.SetActive(true)
	typeText(&f, "123")
	f.MoveCursor(CursorLeft)
	f.MoveCursor(CursorLeft)

	snap := f.Snapshot()
	if snap.Text() != "123" {
		t.Fatalf("Snapshot().Text() = %q, want %q", snap.Text(), "123")
	}

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\ny"), Paste: true})
	f.Restore(snap)

	if f.Text() != "123" {
		t.Errorf("Text() after Restore = %q, want %q", f.Text(), "123")
	}
	if row, col := f.Cursor(); row != 0 || col != 1 {
		t.Errorf("Cursor() after Restore = (%d, %d), want (0, 1)", row, col)
	}

	f.InsertChar('9')
	if f.Text() != "1923" {
		t.Errorf("Text() after typing at restored cursor = %q, want %q", f.Text(), "1923")
	}
}

func TestRole_Title(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{Initial, "initial"},
		{Final, "final"},
		{PercentChange, "percent change"},
		{Role(7), "field 7"},
	}

	for _, tt := range tests {
		if got := tt.role.Title(); got != tt.want {
			t.Errorf("Role(%d).Title() = %q, want %q", int(tt.role), got, tt.want)
		}
	}
}

func TestRole_IsInput(t *testing.T) {
	if !Initial.IsInput() || !Final.IsInput() {
		t.Error("Expected Initial and Final to be inputs")
	}
	if PercentChange.IsInput() {
		t.Error("Expected PercentChange not to be an input")
	}
}

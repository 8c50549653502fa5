// Package calculator implements the interactive percent change calculator.
//
// The Model holds three linked fields, "initial", "final" and
// "percent change", and a focus controller. It is a Bubble Tea model: every
// key or mouse message is handled completely, including any recomputation,
// before the next one is read.
//
// # Key Handling
//
// Update classifies each key in priority order:
//
//  1. Esc quits.
//  2. Shift+Tab moves focus to the previous field.
//  3. Tab moves focus to the next field.
//  4. Enter, Ctrl-M and Ctrl-J are ignored so fields stay single-line.
//  5. Anything else is passed to the focused field's editor.
//
// # Edit Acceptance
//
// After an edit changes the focused field, its text is checked with
// numeric.Parse. Text that is not a number is rolled back to exactly what it
// was before the edit, cursor included, so a rejected paste leaves nothing
// behind. An edit that empties the field is kept.
//
// Accepted edits to initial or final recompute percent change when both hold
// numbers. Edits to percent change are validated the same way but never
// propagate back to the inputs.
//
// # Exit Report
//
// When the program ends, Report prints the input fields in the form
//
//	Left textarea: ["100"]
//	Right textarea: ["150"]
package calculator

// Package ui provides styled, non-interactive output for pctchange commands.
//
// Commands that print a result and exit (compute, config show) use a
// Printer to render lipgloss boxes sized to the terminal. The interactive
// calculator has its own styles in the calculator package.
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintResult(ui.NewSuccessResult("Percent change",
//	    ui.Detail{Key: "Initial", Value: "100"},
//	    ui.Detail{Key: "Final", Value: "150"},
//	    ui.Detail{Key: "Percent change", Value: "0.5"},
//	))
//
// Box widths are clamped between MinTerminalWidth and MaxContentWidth.
package ui

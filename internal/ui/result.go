package ui

import (
	"strings"
)

// Detail is one key/value line in a result box
type Detail struct {
	Key   string
	Value string
}

// Result is a success or failure box with ordered details
type Result struct {
	Success bool
	Title   string
	Details []Detail
	Err     error
	Width   int
}

// NewSuccessResult creates a success result box sized to the terminal
func NewSuccessResult(title string, details ...Detail) *Result {
	return &Result{
		Success: true,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box sized to the terminal
func NewFailureResult(title string, err error) *Result {
	return &Result{
		Title: title,
		Err:   err,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the box width for rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = ClampWidth(width)
	return r
}

// AddDetail appends a detail line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	var lines []string

	if r.Success {
		lines = append(lines, SuccessTitleStyle.Render(SuccessMarker+"  "+r.Title))
	} else {
		lines = append(lines, ErrorTitleStyle.Render(FailureMarker+"  "+r.Title))
	}
	lines = append(lines, "")

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render(d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}

	if r.Err != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+r.Err.Error()))
	}

	content := strings.Join(lines, "\n")
	if r.Success {
		return SuccessBoxStyle(r.Width).Render(content)
	}
	return ErrorBoxStyle(r.Width).Render(content)
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

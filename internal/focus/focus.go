// Package focus tracks which of a fixed, ordered set of targets receives input.
//
// The Controller holds a single index and moves it forward or backward with
// wraparound. Every move deactivates the old target and activates the new one,
// so exactly one target is active after each call.
package focus

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Target is anything that can be switched between active and inactive
type Target interface {
	SetActive(active bool) tea.Cmd
}

// Controller cycles input focus over size targets.
// The zero value behaves like New(1).
type Controller struct {
	which int
	size  int
}

// New creates a controller for size targets with the first one focused.
// Sizes below 1 are treated as 1.
func New(size int) Controller {
	if size < 1 {
		size = 1
	}
	return Controller{size: size}
}

// Index returns the focused target index
func (c Controller) Index() int {
	return c.which
}

// Size returns the number of targets the controller cycles over
func (c Controller) Size() int {
	if c.size < 1 {
		return 1
	}
	return c.size
}

// Sync activates the focused target and deactivates all others.
// Used once at startup so exactly one target is active.
func (c Controller) Sync(targets []Target) tea.Cmd {
	var cmds []tea.Cmd
	for i, t := range targets {
		if i == c.which {
			cmds = append(cmds, t.SetActive(true))
		} else {
			cmds = append(cmds, t.SetActive(false))
		}
	}
	return tea.Batch(cmds...)
}

// Advance moves focus to the next target, wrapping to the first
func (c *Controller) Advance(targets []Target) tea.Cmd {
	return c.moveTo((c.which+1)%c.Size(), targets)
}

// Retreat moves focus to the previous target, wrapping to the last
func (c *Controller) Retreat(targets []Target) tea.Cmd {
	n := c.Size()
	return c.moveTo((c.which+n-1)%n, targets)
}

func (c *Controller) moveTo(next int, targets []Target) tea.Cmd {
	if c.which < len(targets) {
		targets[c.which].SetActive(false)
	}
	c.which = next
	if c.which < len(targets) {
		return targets[c.which].SetActive(true)
	}
	return nil
}

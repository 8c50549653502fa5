package field

import "fmt"

// Role identifies which of the three calculator fields a Field is
type Role int

const (
	// Initial is the starting value
	Initial Role = iota
	// Final is the ending value
	Final
	// PercentChange is the value derived from Initial and Final
	PercentChange
)

// Roles lists every role in focus order
var Roles = []Role{Initial, Final, PercentChange}

// Title returns the label shown in the field's border
func (r Role) Title() string {
	switch r {
	case Initial:
		return "initial"
	case Final:
		return "final"
	case PercentChange:
		return "percent change"
	default:
		return fmt.Sprintf("field %d", int(r))
	}
}

// String implements fmt.Stringer
func (r Role) String() string {
	return r.Title()
}

// IsInput reports whether the role feeds the derivation
func (r Role) IsInput() bool {
	return r == Initial || r == Final
}

// VisualState is the rendering state of a field
type VisualState int

const (
	VisualInactive VisualState = iota
	VisualActive
)

// String implements fmt.Stringer
func (v VisualState) String() string {
	if v == VisualActive {
		return "active"
	}
	return "inactive"
}

// Direction is a cursor movement within a field
type Direction int

const (
	CursorLeft Direction = iota
	CursorRight
	CursorStart
	CursorEnd
)

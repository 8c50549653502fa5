package config

// CurrentVersion is the only preferences file version this build understands
const CurrentVersion = 1

// Preferences represents the entire user preferences file.
// Only presentation and logging settings live here; field values from a
// session are never stored.
type Preferences struct {
	Version int           `yaml:"version"`
	Theme   *Theme        `yaml:"theme,omitempty"`
	Logging *LoggingPrefs `yaml:"logging,omitempty"`
	Display *DisplayPrefs `yaml:"display,omitempty"`
}

// Theme holds the colors used to draw the calculator fields.
// Values are anything lipgloss.Color accepts: "#RRGGBB" or an ANSI index.
type Theme struct {
	ActiveBorder   string `yaml:"active_border"`   // Border of the field receiving input; empty is the terminal default
	InactiveBorder string `yaml:"inactive_border"` // Border of the other fields (dimmed)
	Title          string `yaml:"title"`           // Field titles
	Help           string `yaml:"help"`            // Key help footer
}

// LoggingPrefs controls the zap logger.
type LoggingPrefs struct {
	Level string `yaml:"level,omitempty"` // "", "debug", "info", "warn", "error"
	File  string `yaml:"file,omitempty"`  // Log file path; empty means the config dir
}

// DisplayPrefs controls layout.
type DisplayPrefs struct {
	FieldWidth int `yaml:"field_width"` // Field width in cells; 0 follows the terminal width
}

// DefaultTheme returns the built-in colors.
// The active border is left to the terminal's default foreground; only
// inactive fields are dimmed.
func DefaultTheme() *Theme {
	return &Theme{
		ActiveBorder:   "", // Terminal default
		InactiveBorder: "#626262", // Gray
		Title:          "#FFFFFF", // White
		Help:           "#626262", // Gray
	}
}

// NewPreferences creates Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version: CurrentVersion,
		Theme:   DefaultTheme(),
		Logging: &LoggingPrefs{},
		Display: &DisplayPrefs{FieldWidth: 0},
	}
}

// applyDefaults fills sections and values missing from a loaded file
func (p *Preferences) applyDefaults() {
	defaults := DefaultTheme()
	if p.Theme == nil {
		p.Theme = defaults
	} else {
		if p.Theme.ActiveBorder == "" {
			p.Theme.ActiveBorder = defaults.ActiveBorder
		}
		if p.Theme.InactiveBorder == "" {
			p.Theme.InactiveBorder = defaults.InactiveBorder
		}
		if p.Theme.Title == "" {
			p.Theme.Title = defaults.Title
		}
		if p.Theme.Help == "" {
			p.Theme.Help = defaults.Help
		}
	}
	if p.Logging == nil {
		p.Logging = &LoggingPrefs{}
	}
	if p.Display == nil {
		p.Display = &DisplayPrefs{}
	}
}

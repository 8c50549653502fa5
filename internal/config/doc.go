// Package config provides user preferences for the percent change calculator.
//
// Preferences are an optional YAML file holding theme colors, logging
// settings and layout options. Field values are never written here: each
// session starts empty.
//
// # Configuration File Location
//
// The file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/pctchange/config.yaml or $HOME/.config/pctchange/config.yaml
//   - macOS: $HOME/.config/pctchange/config.yaml
//   - Windows: %LOCALAPPDATA%\pctchange\config.yaml
//
// Any command can point at another file with --config.
//
// # Usage Example
//
//	prefs, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(prefs.Theme.ActiveBorder)
//
// # File Format
//
//	version: 1
//	theme:
//	  active_border: "205"
//	  inactive_border: "#626262"
//	  title: "#FFFFFF"
//	  help: "#626262"
//	logging:
//	  level: debug
//	  file: /tmp/pctchange.log
//	display:
//	  field_width: 40
//
// Missing sections and colors fall back to defaults. A missing file is the
// same as an empty one.
package config

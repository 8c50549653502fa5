// Package logging provides structured logging for the percent change calculator.
//
// This package wraps zap logger with package-level convenience functions and
// a few calculator-specific helpers.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Per-keystroke detail (focus moves, rejected edits)
//   - Info: Derived results and session start/end
//   - Warn: Non-fatal issues (unreadable config, fallback defaults)
//   - Error: Fatal issues (terminal setup failures)
//
// # Output
//
// The interactive calculator draws on stdout, so log output always goes to a
// file. Logging is silent unless a level is given explicitly or through the
// PCTCHANGE_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize("debug", "/tmp/pctchange.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Specialized Logging
//
//	logging.LogFocusChange("initial", "final")
//	logging.LogEditRejected("initial", "12a", "12", err)
//	logging.LogDerivation("100", "150", "0.5")
//	logging.LogSession("start")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PCTCHANGE_LOG_LEVEL"

// DefaultLogFile is used when logging is enabled without an explicit path.
// The calculator owns the terminal, so logs never go to stdout.
const DefaultLogFile = "pctchange.log"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks the PCTCHANGE_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
// If path is empty, DefaultLogFile in the working directory is used.
func Initialize(level, path string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if err := CheckLevel(level); err != nil {
		return err
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = DefaultLogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}

	// Plain levels: the output is a file, not a terminal
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// Levels lists the accepted level names
var Levels = []string{"debug", "info", "warn", "error"}

// CheckLevel returns an error unless level is empty or one of Levels
func CheckLevel(level string) error {
	if level == "" {
		return nil
	}
	for _, l := range Levels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q (expected one of %s)", level, strings.Join(Levels, ", "))
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info, since asking for logs at all means something.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger (used by tests to observe output)
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFocusChange logs a move of input focus between fields
func LogFocusChange(from, to string) {
	Debug("Focus changed",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogEditRejected logs an edit rolled back because the text was not a number
func LogEditRejected(field, rejected, restored string, err error) {
	Debug("Edit rejected",
		zap.String("field", field),
		zap.String("rejected", rejected),
		zap.String("restored", restored),
		zap.Error(err),
	)
}

// LogDerivation logs a recomputed percent change
func LogDerivation(initial, final, result string) {
	Info("Percent change derived",
		zap.String("initial", initial),
		zap.String("final", final),
		zap.String("result", result),
	)
}

// LogSession logs the start or end of an interactive session
func LogSession(event string, fields ...zap.Field) {
	Info("Session event", append([]zap.Field{zap.String("event", event)}, fields...)...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

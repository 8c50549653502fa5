package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	path := filepath.Join(t.TempDir(), "silent.log")

	if err := Initialize("", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	Info("should not be written")
	Sync()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no log file in silent mode, stat error = %v", err)
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")

	if err := Initialize("info", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	LogDerivation("100", "150", "0.5")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Percent change derived") {
		t.Errorf("Log file missing derivation entry: %s", data)
	}
	SetLogger(zap.NewNop())
}

func TestInitialize_LevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	path := filepath.Join(t.TempDir(), "env.log")

	if err := Initialize("", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info to be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("Expected warn to be enabled at warn level")
	}
	SetLogger(zap.NewNop())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.level); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestCheckLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"bogus", true},
		{"DEBUG", true},
	}

	for _, tt := range tests {
		if err := CheckLevel(tt.level); (err != nil) != tt.wantErr {
			t.Errorf("CheckLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
	}
}

func TestInitialize_RejectsUnknownLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")

	if err := Initialize("bogus", path); err == nil {
		t.Fatal("Initialize() with unknown level should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file should not be created, stat err = %v", err)
	}
}

func TestHelpers_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	LogFocusChange("initial", "final")
	LogEditRejected("final", "1x", "1", errors.New("bad"))
	LogSession("end", zap.String("initial", "3"))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 log entries, got %d", len(entries))
	}

	focus := entries[0].ContextMap()
	if focus["from"] != "initial" || focus["to"] != "final" {
		t.Errorf("Unexpected focus fields: %v", focus)
	}

	rejected := entries[1].ContextMap()
	if rejected["rejected"] != "1x" || rejected["restored"] != "1" {
		t.Errorf("Unexpected rejection fields: %v", rejected)
	}

	session := entries[2].ContextMap()
	if session["event"] != "end" || session["initial"] != "3" {
		t.Errorf("Unexpected session fields: %v", session)
	}
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	SetLogger(nil)
	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil")
	}
}

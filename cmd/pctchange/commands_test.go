package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/pctchange/internal/numeric"
)

// execute runs the root command with args and returns its stdout.
// Flags are package globals, so every call passes the ones it relies on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PCTCHANGE_LOG_LEVEL", "")
	configPath, logLevel, logFile = "", "", ""
	forceInit = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestComputePlain(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"increase", []string{"100", "150"}, "0.5\n", false},
		{"decrease", []string{"80", "60"}, "-0.25\n", false},
		{"negative initial", []string{"--", "-20", "-10"}, "0.5\n", false},
		{"zero initial", []string{"0", "5"}, "+Inf\n", false},
		{"zero over zero", []string{"0", "0"}, "NaN\n", false},
		{"invalid initial", []string{"abc", "5"}, "", true},
		{"empty final", []string{"1", ""}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"compute", "--format", "plain"}, tt.args...)
			got, err := execute(t, args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("compute %v error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				if !numeric.IsParseError(err) {
					t.Errorf("compute %v error = %v, want a parse error", tt.args, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("compute %v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestComputeBox(t *testing.T) {
	got, err := execute(t, "compute", "--format", "box", "100", "150")
	if err != nil {
		t.Fatalf("compute --format box error = %v", err)
	}

	for _, want := range []string{"Percent change", "100", "150", "0.5"} {
		if !strings.Contains(got, want) {
			t.Errorf("box output missing %q:\n%s", want, got)
		}
	}
}

func TestComputeUnknownFormat(t *testing.T) {
	_, err := execute(t, "compute", "--format", "json", "1", "2")
	if err == nil {
		t.Fatal("compute --format json should fail")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("error = %v, want unknown format", err)
	}
}

func TestUnknownLogLevel(t *testing.T) {
	tests := []struct {
		name string
		flag string
		env  string
	}{
		{"flag", "bogus", ""},
		{"env", "", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"compute", "--format", "plain", "--log-level", tt.flag, "1", "2"}
			logDir := t.TempDir()
			args = append(args, "--log-file", filepath.Join(logDir, "pctchange.log"))

			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			configPath, logLevel, logFile = "", "", ""
			t.Setenv("PCTCHANGE_LOG_LEVEL", tt.env)

			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(args)
			err := rootCmd.Execute()
			if err == nil {
				t.Fatalf("compute with log level %q/%q should fail", tt.flag, tt.env)
			}
			if !strings.Contains(err.Error(), "invalid log level") {
				t.Errorf("error = %v, want invalid log level", err)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestComputeArgCount(t *testing.T) {
	if _, err := execute(t, "compute", "--format", "plain", "1"); err == nil {
		t.Error("compute with one argument should fail")
	}
}

func TestConfigInitAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "config.yaml")

	out, err := execute(t, "config", "path", "--config", path)
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(out), path)
	}

	out, err = execute(t, "config", "init", "--config", path, "--force=false")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("config init output = %q, should mention %s", out, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// A second init without --force must not overwrite
	if _, err := execute(t, "config", "init", "--config", path, "--force=false"); err == nil {
		t.Error("config init should fail when the file exists")
	}

	out, err = execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(out, "version: 1") {
		t.Errorf("config show output missing version:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "pctchange ") || !strings.Contains(out, "commit:") {
		t.Errorf("version output = %q", out)
	}
}

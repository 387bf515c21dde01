package logger

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readEntries decodes every JSON line written to the log file.
func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer file.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan log file: %v", err)
	}
	return entries
}

func initFile(t *testing.T, level string) string {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "dconwrapper.log")
	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	t.Cleanup(Nop)
	return logFile
}

func TestConsoleWritesToStderr(t *testing.T) {
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	origStderr, origStdout := os.Stderr, os.Stdout
	os.Stderr, os.Stdout = stderrW, stdoutW

	initErr := InitWithFileConfig("info", FileConfig{}, true)
	if initErr == nil {
		Info("remesh finished", zap.Int("quads", 6))
	}
	Nop()
	os.Stderr, os.Stdout = origStderr, origStdout
	stderrW.Close()
	stdoutW.Close()

	if initErr != nil {
		t.Fatalf("failed to init logger: %v", initErr)
	}
	stderr, _ := io.ReadAll(stderrR)
	stdout, _ := io.ReadAll(stdoutR)

	if !strings.Contains(string(stderr), "remesh finished") {
		t.Errorf("expected message on stderr, got %q", stderr)
	}
	if len(stdout) != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout)
	}
}

func TestFileOutputIsJSON(t *testing.T) {
	logFile := initFile(t, "info")

	Info("mesh loaded", zap.Int("vertices", 42), zap.Int("faces", 80))
	Sync()

	entries := readEntries(t, logFile)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e["msg"] != "mesh loaded" {
		t.Errorf("msg = %v", e["msg"])
	}
	if e["level"] != "INFO" {
		t.Errorf("level = %v", e["level"])
	}
	// encoding/json decodes numbers as float64
	if e["vertices"] != float64(42) || e["faces"] != float64(80) {
		t.Errorf("fields = %v / %v", e["vertices"], e["faces"])
	}
	if _, ok := e["time"]; !ok {
		t.Error("expected a time field")
	}
}

func TestCallerNamesCallSite(t *testing.T) {
	logFile := initFile(t, "debug")

	Info("from wrapper")
	Sugar.Infof("from %s", "sugar")
	Log.Info("from log")
	Sync()

	entries := readEntries(t, logFile)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for _, e := range entries {
		caller, _ := e["caller"].(string)
		if !strings.Contains(caller, "logger_test.go") {
			t.Errorf("%v: caller = %q, want logger_test.go", e["msg"], caller)
		}
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"debug", []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"info", []string{"INFO", "WARN", "ERROR"}},
		{"warn", []string{"WARN", "ERROR"}},
		{"error", []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := initFile(t, tt.level)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			entries := readEntries(t, logFile)
			var got []string
			for _, e := range entries {
				got = append(got, e["level"].(string))
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("levels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")
	want := FileConfig{Path: "/tmp/test.log", MaxSizeMB: 20, MaxBackups: 5, MaxAgeDays: 14, Compress: true}
	if cfg != want {
		t.Errorf("DefaultFileConfig = %+v, want %+v", cfg, want)
	}
}

func TestNopBeforeInit(t *testing.T) {
	Nop()

	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should have every level disabled")
	}
	// Every entry point must be usable without Init.
	Debug("discarded")
	Info("discarded")
	Warn("discarded")
	Error("discarded")
	Sugar.Infof("discarded %d", 1)
	Sync()
}

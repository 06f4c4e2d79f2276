package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"klogd/internal/config"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewDefaultsToConsole(t *testing.T) {
	logger, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello")
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Daemon.Component = "logd"
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Logging.Format = "json"

	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("file sink check")

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "logd.log"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "file sink check") {
		t.Fatalf("log file missing message: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		" DEBUG ": slog.LevelDebug,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestReporterMapsSeverities(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rep := NewReporter(logger)
	rep.Errorf("boom %d", 1)
	rep.Debugf("trace %s", "x")

	out := buf.String()
	if !strings.Contains(out, `"msg":"boom 1"`) || !strings.Contains(out, `"level":"ERROR"`) {
		t.Fatalf("missing error record: %s", out)
	}
	if !strings.Contains(out, `"msg":"trace x"`) || !strings.Contains(out, `"level":"DEBUG"`) {
		t.Fatalf("missing debug record: %s", out)
	}
}

func TestReporterNilLoggerDiscards(t *testing.T) {
	rep := NewReporter(nil)
	rep.Errorf("nowhere")
	rep.Debugf("nowhere")
}

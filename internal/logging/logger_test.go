package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tessro/isoshelf/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "isoshelf.log")
	logger, closer, err := New(Options{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	NewComponentLogger(logger, "recent").Debug("rebuilt menu", slog.Int("entries", 2))
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{`"msg":"rebuilt menu"`, `"component":"recent"`, `"entries":2`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %s", out, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, _, err := New(Options{Format: "xml", Stderr: true})
	if err == nil {
		t.Fatal("New() error = nil, want error for unknown format")
	}
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	logger, closer, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closer.Close()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger without outputs should be disabled")
	}
}

func TestNewFromConfigInfoLevelStaysQuiet(t *testing.T) {
	cfg := config.Default()
	logger, closer, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	defer closer.Close()
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info-level config without a log file should not log to the console")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" WARN ": slog.LevelWarn,
		"error":  slog.LevelError,
		"":       slog.LevelInfo,
		"other":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

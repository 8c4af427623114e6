package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewJSON_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, &buf)

	logger.Info("seasons pruned", "target", "season", "deleted", 2, "error", errors.New("boom"))
	logger.Debug("hidden below level")

	out := buf.String()
	for _, want := range []string{`"msg":"seasons pruned"`, `"target":"season"`, `"deleted":2`, `"error":"boom"`, `"level":"INFO"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log output, got %s", want, out)
		}
	}
	if strings.Contains(out, "hidden below level") {
		t.Fatalf("debug entry should be filtered at info level")
	}
}

func TestZapFields_OddArgs(t *testing.T) {
	fields := zapFields([]any{"key", "value", "dangling"})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[1].Key != "dangling" {
		t.Fatalf("unexpected dangling key: %s", fields[1].Key)
	}
}

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "leaguectl.log")

	logger, closeFn, err := Open(LevelWarn, path)
	if err != nil {
		t.Fatalf("open logger: %v", err)
	}
	logger.Warn("routine missing", "name", "clean")
	if err := closeFn(); err != nil {
		t.Fatalf("close logger: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), `"msg":"routine missing"`) {
		t.Fatalf("unexpected log file content: %s", raw)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}

func TestWith_AddsFieldsToEveryEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, &buf).With("target", "team")

	logger.Info("prune run finished", "deleted", 2)
	logger.Warn("team has no league minimum, skipping")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d: %s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, `"target":"team"`) {
			t.Fatalf("expected target field in %s", line)
		}
	}
}

func TestZap_ExposesUnderlyingCore(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelDebug, &buf)

	logger.Zap().Sugar().Infof("applied %d migrations", 1)
	if !strings.Contains(buf.String(), `"msg":"applied 1 migrations"`) {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	var nilLogger *Logger
	if nilLogger.Zap() == nil {
		t.Fatalf("expected nop zap logger from nil receiver")
	}
}

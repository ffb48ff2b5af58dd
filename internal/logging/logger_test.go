package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readLogLines(t *testing.T, dir string) []map[string]any {
	t.Helper()

	f, err := os.Open(filepath.Join(dir, "discussion.log"))
	if err != nil {
		t.Fatalf("opening log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("parsing log line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLoggerWritesJSON(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	log.Info("round complete", "average", 72.5)
	if err := log.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entries := readLogLines(t, dir)
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if entries[0]["msg"] != "round complete" {
		t.Errorf("msg = %v, want %q", entries[0]["msg"], "round complete")
	}
	if entries[0]["average"] != 72.5 {
		t.Errorf("average = %v, want 72.5", entries[0]["average"])
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLogger(dir, LevelWarn)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept")
	if err := log.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entries := readLogLines(t, dir)
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if entries[0]["msg"] != "kept" {
		t.Errorf("msg = %v, want %q", entries[0]["msg"], "kept")
	}
}

func TestChildLoggerAttributes(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	child := log.WithSession("cancer treatment").WithModel("gpt-one").WithRound(3)
	child.Info("queried model")

	// Parent logger must not carry child attributes.
	log.Info("plain")

	if err := log.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entries := readLogLines(t, dir)
	if len(entries) != 2 {
		t.Fatalf("log entries = %d, want 2", len(entries))
	}

	first := entries[0]
	if first["session"] != "cancer treatment" {
		t.Errorf("session = %v, want %q", first["session"], "cancer treatment")
	}
	if first["model"] != "gpt-one" {
		t.Errorf("model = %v, want %q", first["model"], "gpt-one")
	}
	if first["round"] != float64(3) {
		t.Errorf("round = %v, want 3", first["round"])
	}

	if _, ok := entries[1]["model"]; ok {
		t.Error("parent logger should not carry the child's model attribute")
	}
}

func TestEmptySessionDirLogsToStderr(t *testing.T) {
	log, err := NewLogger("", LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("Close() on stderr logger error = %v", err)
	}
}

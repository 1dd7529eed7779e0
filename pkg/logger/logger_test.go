package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLoggerWritesCriticalLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, FormatJSON)

	log.Critical("app: init failed", "component", "db")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "CRITICAL" {
		t.Fatalf("level = %v, want CRITICAL", entry["level"])
	}
	if entry["component"] != "db" {
		t.Fatalf("missing attribute: %v", entry)
	}
}

func TestBusinessAndInternalErrors(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, FormatJSON).With("request", "r-1")

	log.BusinessError("expenses.create: invalid input", errors.New("description is required"))
	log.InternalError("expenses.create: insert failed", errors.New("connection reset"), "group_id", 1)
	log.InternalError("ignored", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}

	var warn, fail map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &warn); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &fail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if warn["level"] != "WARN" || warn["err"] != "description is required" || warn["request"] != "r-1" {
		t.Fatalf("unexpected business error entry: %v", warn)
	}
	if fail["level"] != "ERROR" || fail["group_id"] != float64(1) {
		t.Fatalf("unexpected internal error entry: %v", fail)
	}
}

func TestNewWithOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		debugSeen bool
		json      bool
	}{
		{name: "production defaults", opts: Options{}, debugSeen: false, json: true},
		{name: "development debug", opts: Options{Env: "development"}, debugSeen: true, json: true},
		{name: "explicit warn", opts: Options{Env: "development", Level: "warn"}, debugSeen: false, json: true},
		{name: "text format", opts: Options{Level: "debug", Format: " TEXT "}, debugSeen: true, json: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOptions(&buf, tt.opts)
			log.Debug("debug line")

			if got := strings.Contains(buf.String(), "debug line"); got != tt.debugSeen {
				t.Fatalf("debug visible = %v, want %v (%q)", got, tt.debugSeen, buf.String())
			}
			if tt.debugSeen && json.Valid(bytes.TrimSpace(buf.Bytes())) != tt.json {
				t.Fatalf("json output = %v, want %v: %q", !tt.json, tt.json, buf.String())
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Critical("nothing")
	log.InternalError("nothing", errors.New("boom"))
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func logOne(t *testing.T, args ...any) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("record", args...)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	return entry
}

func TestRedactSensitive(t *testing.T) {
	entry := logOne(t,
		"dob", "1990-01-01",
		"household_name", "Lee Family",
		"persons", 3,
		"path", "/data/house.json",
	)

	if got := entry["dob"]; got != redactedValue {
		t.Errorf("dob = %v, want redacted", got)
	}
	if got := entry["household_name"]; got != "L***" {
		t.Errorf("household_name = %v, want L***", got)
	}
	if got := entry["persons"]; got != redactedValue {
		t.Errorf("persons = %v, want redacted", got)
	}
	if got := entry["path"]; got != "/data/house.json" {
		t.Errorf("path = %v, want unchanged", got)
	}
}

func TestRedactSensitive_Group(t *testing.T) {
	entry := logOne(t, slog.Group("person", slog.String("name", "Ana"), slog.String("dob", "1990-01-01")))

	group, ok := entry["person"].(map[string]any)
	if !ok {
		t.Fatalf("person group missing: %v", entry)
	}
	if got := group["dob"]; got != redactedValue {
		t.Errorf("person.dob = %v, want redacted", got)
	}
}

func TestMaskName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Lee", "L***"},
		{"Émile", "É***"},
	}
	for _, tt := range tests {
		if got := MaskName(tt.in); got != tt.want {
			t.Errorf("MaskName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSensitiveKey(t *testing.T) {
	for key, want := range map[string]bool{
		"dob":        true,
		"person_dob": true,
		"Persons":    true,
		"path":       false,
		"stem":       false,
	} {
		if got := IsSensitiveKey(key); got != want {
			t.Errorf("IsSensitiveKey(%q) = %v, want %v", key, got, want)
		}
	}
}

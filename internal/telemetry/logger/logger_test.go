package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		json bool
	}{
		{"default config", Config{Level: "info", Format: "json"}, true},
		{"text format", Config{Level: "debug", Format: "text"}, false},
		{"console format", Config{Level: "info", Format: "console"}, false},
		{"unknown format falls back to json", Config{Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cfg.Output = &buf

			l, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			l.Info("hello", "k", "v")

			isJSON := json.Valid(bytes.TrimSpace(buf.Bytes()))
			if isJSON != tt.json {
				t.Errorf("JSON output = %v, want %v: %s", isJSON, tt.json, buf.String())
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer SetLevel("info")

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %s", buf.String())
	}

	SetLevel("debug")
	if got := GetLevel(); got != "debug" {
		t.Errorf("GetLevel() = %q, want debug", got)
	}
	l.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug record missing after SetLevel(debug)")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"DEBUG", "debug"},
		{"warning", "warn"},
		{"error", "error"},
		{"bogus", "info"},
		{"", "info"},
	}
	defer SetLevel("info")

	for _, tt := range tests {
		SetLevel(tt.in)
		if got := GetLevel(); got != tt.want {
			t.Errorf("SetLevel(%q): GetLevel() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

type backupRow struct {
	Filename string    `json:"filename"`
	Path     string    `json:"path" table:"wide"`
	Created  time.Time `json:"created" table:"age"`
	Size     int64     `json:"size" table:"bytes"`
	Secret   string    `json:"secret" table:"-"`
}

func render(t *testing.T, f *TableFormatter, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return buf.String()
}

func TestTableFormatter_Table(t *testing.T) {
	table := &Table{}
	table.SetHeaders("NAME", "VALUE")
	table.AddRow("key1", "value1")

	out := render(t, &TableFormatter{}, table)
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "value1") {
		t.Errorf("Format() = %q, missing header or row", out)
	}

	out = render(t, &TableFormatter{NoHeaders: true}, *table)
	if strings.Contains(out, "NAME") {
		t.Errorf("Format() with NoHeaders = %q, want no header", out)
	}
}

func TestTableFormatter_StructSlice(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	rows := []backupRow{{
		Filename: "book_backup_2024-03-05_10-00-00.json",
		Path:     "/data/book_backup_2024-03-05_10-00-00.json",
		Created:  now.Add(-2 * time.Hour),
		Size:     1536,
		Secret:   "hidden",
	}}

	tests := []struct {
		name    string
		wide    bool
		want    []string
		notWant []string
	}{
		{
			name:    "narrow",
			want:    []string{"FILENAME", "CREATED", "SIZE", "2 hours ago", "1.5 KiB"},
			notWant: []string{"PATH", "SECRET", "hidden"},
		},
		{
			name:    "wide",
			wide:    true,
			want:    []string{"PATH", "/data/book_backup_2024-03-05_10-00-00.json"},
			notWant: []string{"SECRET"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &TableFormatter{Wide: tt.wide, Now: func() time.Time { return now }}
			out := render(t, f, rows)
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("output contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestTableFormatter_PointerSlice(t *testing.T) {
	rows := []*backupRow{{Filename: "a.json"}, nil}
	out := render(t, &TableFormatter{}, rows)
	if !strings.Contains(out, "a.json") {
		t.Errorf("output missing a.json:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("line count = %d, want 3", got)
	}
}

func TestTableFormatter_EmptySlice(t *testing.T) {
	if out := render(t, &TableFormatter{}, []backupRow{}); out != "" {
		t.Errorf("Format(empty) = %q, want empty", out)
	}
}

func TestTableFormatter_ScalarSlice(t *testing.T) {
	out := render(t, &TableFormatter{}, []string{"x", "y"})
	want := "VALUE\nx\ny\n"
	if out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTableFormatter_MapSorted(t *testing.T) {
	out := render(t, &TableFormatter{}, map[string]int{"Scheduled": 2, "Completed": 1, "Overdue": 0})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), out)
	}
	for i, prefix := range []string{"KEY", "Completed", "Overdue", "Scheduled"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestTableFormatter_SingleStruct(t *testing.T) {
	out := render(t, &TableFormatter{}, &backupRow{Filename: "a.json", Path: "/a.json", Size: 10})
	for _, s := range []string{"FIELD", "filename", "path", "/a.json", "10 B"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "secret") {
		t.Errorf("output contains hidden field:\n%s", out)
	}
}

func TestTableFormatter_FallbackToJSON(t *testing.T) {
	out := render(t, &TableFormatter{}, 42)
	if strings.TrimSpace(out) != "42" {
		t.Errorf("Format(42) = %q, want JSON 42", out)
	}
}

func TestTableFormatter_Nil(t *testing.T) {
	if out := render(t, &TableFormatter{}, nil); out != "" {
		t.Errorf("Format(nil) = %q, want empty", out)
	}
}

func TestFormatValue(t *testing.T) {
	str := "pointer value"
	var nilPtr *string
	tests := []struct {
		name  string
		input reflect.Value
		want  string
	}{
		{"string", reflect.ValueOf("hello"), "hello"},
		{"empty string", reflect.ValueOf(""), "-"},
		{"int", reflect.ValueOf(42), "42"},
		{"uint32", reflect.ValueOf(uint32(99)), "99"},
		{"float64", reflect.ValueOf(1250.456), "1250.46"},
		{"bool", reflect.ValueOf(true), "true"},
		{"empty slice", reflect.ValueOf([]int{}), "-"},
		{"slice", reflect.ValueOf([]int{1, 2, 3}), "[3 items]"},
		{"map", reflect.ValueOf(map[string]int{"a": 1}), "{1 keys}"},
		{"pointer", reflect.ValueOf(&str), "pointer value"},
		{"nil pointer", reflect.ValueOf(nilPtr), ""},
		{"invalid", reflect.Value{}, ""},
		{"time", reflect.ValueOf(time.Date(2024, 6, 15, 14, 30, 5, 0, time.UTC)), "2024-06-15 14:30:05"},
		{"zero time", reflect.ValueOf(time.Time{}), "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.input); got != tt.want {
				t.Errorf("formatValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag  string
		want tagOptions
	}{
		{"", tagOptions{}},
		{"-", tagOptions{skip: true}},
		{"wide,bytes", tagOptions{wide: true, bytes: true}},
		{"age", tagOptions{age: true}},
	}
	for _, tt := range tests {
		if got := parseTag(tt.tag); got != tt.want {
			t.Errorf("parseTag(%q) = %+v, want %+v", tt.tag, got, tt.want)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":          "Name",
		"AppVersion":    "App_Version",
		"already_snake": "already_snake",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

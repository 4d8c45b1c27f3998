package fsmeta

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yndnr/hhbook/internal/core/domain"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "house.json")
	if err := os.WriteFile(existing, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		want    bool
		wantErr error
	}{
		{"existing file", existing, true, nil},
		{"new file in existing dir", filepath.Join(dir, "new.json"), false, nil},
		{"existing directory", dir, true, nil},
		{"root", string(filepath.Separator), true, nil},
		{"relative path", "house.json", false, domain.ErrInvalidPath},
		{"empty path", "", false, domain.ErrInvalidPath},
		{"missing parent", filepath.Join(dir, "nope", "house.json"), false, domain.ErrInvalidPath},
		{"parent is a file", filepath.Join(existing, "house.json"), false, domain.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.json")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2024, 3, 5, 10, 15, 30, 0, time.FixedZone("UTC+2", 2*60*60))
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	info, err := Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size != 10 {
		t.Errorf("Size = %d, want 10", info.Size)
	}
	if !info.Modified.Equal(mtime) || info.Modified.Location() != time.UTC {
		t.Errorf("Modified = %v, want %v in UTC", info.Modified, mtime.UTC())
	}
	if info.IsReadOnly {
		t.Error("IsReadOnly = true, want false")
	}

	if err := os.Chmod(path, 0o444); err != nil {
		t.Fatal(err)
	}
	info, err = Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsReadOnly {
		t.Error("IsReadOnly = false, want true")
	}
}

func TestStat_Missing(t *testing.T) {
	_, err := Stat(filepath.Join(t.TempDir(), "gone.json"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Stat() error = %v, want ErrNotFound", err)
	}
}

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")

	if err := MkdirAll(nested); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	stat, err := os.Stat(nested)
	if err != nil || !stat.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	// Idempotent.
	if err := MkdirAll(nested); err != nil {
		t.Errorf("second MkdirAll() error = %v", err)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := MkdirAll(filepath.Join(file, "sub")); !errors.Is(err, domain.ErrIO) {
		t.Errorf("MkdirAll(under file) error = %v, want ErrIO", err)
	}
}

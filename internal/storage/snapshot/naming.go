package snapshot

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	// TimestampLayout is the time layout embedded in snapshot names.
	TimestampLayout = "2006-01-02_15-04-05"

	// FallbackStem is used when the base path has no file name.
	FallbackStem = "backup"

	nameInfix     = "_backup_"
	fileExtension = ".json"
	tempExtension = ".tmp"
)

// Stem returns the file name of path without its final extension. Names
// that start with a dot and have no other dot are kept whole. Paths
// without a file name (empty, ".", "..", the root) yield FallbackStem.
func Stem(path string) string {
	if path == "" {
		return FallbackStem
	}
	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return FallbackStem
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	if name == "" {
		return FallbackStem
	}
	return name
}

// FileName returns the snapshot file name for stem captured at t.
func FileName(stem string, t time.Time) string {
	return stem + nameInfix + t.UTC().Format(TimestampLayout) + fileExtension
}

// PathFor returns the snapshot path for basePath captured at t. The
// snapshot is placed in the directory of basePath; a bare file name
// resolves against the working directory.
func PathFor(basePath string, t time.Time) string {
	return filepath.Join(filepath.Dir(basePath), FileName(Stem(basePath), t))
}

// Matches reports whether name is a snapshot file of stem. Only the
// prefix and extension are checked, so hand-copied snapshots with
// free-form suffixes are still recognised.
func Matches(stem, name string) bool {
	return strings.HasPrefix(name, stem+nameInfix) && strings.HasSuffix(name, fileExtension)
}

// ParseTimestamp extracts the capture instant encoded in a snapshot name
// of stem. It fails for names that do not match or whose suffix is not
// a TimestampLayout value.
func ParseTimestamp(stem, name string) (time.Time, bool) {
	if !Matches(stem, name) {
		return time.Time{}, false
	}
	ts := strings.TrimSuffix(strings.TrimPrefix(name, stem+nameInfix), fileExtension)
	t, err := time.ParseInLocation(TimestampLayout, ts, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Location returns the directory and stem under which snapshots of
// basePath are stored.
func Location(basePath string) (dir, stem string) {
	return filepath.Dir(basePath), Stem(basePath)
}

package domain

import (
	"fmt"
	"strings"
)

// FormatVersion is the version string written into new documents.
const FormatVersion = "1.0.0"

// Default settings for a new document.
const (
	DefaultTheme       = ThemeLight
	DefaultAutoBackup  = true
	DefaultBackupCount = 10
)

// Theme is the UI colour scheme stored with the document.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings is the settings block embedded in every document.
type Settings struct {
	LastFilePath *string `json:"last_file_path"`
	Theme        Theme   `json:"theme"`
	AutoBackup   bool    `json:"auto_backup"`
	// BackupCount is the number of newest snapshots kept when pruning.
	BackupCount uint32 `json:"backup_count"`
}

// Document is the full persisted dataset. It is replaced wholesale on
// load and overwritten wholesale on save.
type Document struct {
	Households []Household `json:"households"`
	Settings   Settings    `json:"settings"`
	Version    string      `json:"version"`
}

// DefaultDocument returns the document used when no file exists yet.
func DefaultDocument() *Document {
	return &Document{
		Households: []Household{},
		Settings: Settings{
			Theme:       DefaultTheme,
			AutoBackup:  DefaultAutoBackup,
			BackupCount: DefaultBackupCount,
		},
		Version: FormatVersion,
	}
}

// Validate checks the document invariants: unique household ids and
// enumerated fields within their allowed values.
func (d *Document) Validate() error {
	var violations []string

	seen := make(map[uint32]struct{}, len(d.Households))
	for i := range d.Households {
		h := &d.Households[i]
		if _, dup := seen[h.ID]; dup {
			violations = append(violations, fmt.Sprintf("household id %d is not unique", h.ID))
		}
		seen[h.ID] = struct{}{}
		violations = append(violations, h.validate()...)
	}

	if !d.Settings.Theme.Valid() {
		violations = append(violations, fmt.Sprintf("settings.theme %q is not light or dark", d.Settings.Theme))
	}

	if len(violations) > 0 {
		return ErrValidation.WithDetails(strings.Join(violations, "; "))
	}
	return nil
}

// Household returns the household with the given id.
func (d *Document) Household(id uint32) (*Household, bool) {
	for i := range d.Households {
		if d.Households[i].ID == id {
			return &d.Households[i], true
		}
	}
	return nil, false
}

// MemberCount returns the number of persons across all households.
func (d *Document) MemberCount() int {
	n := 0
	for i := range d.Households {
		n += len(d.Households[i].Persons)
	}
	return n
}

// CountByStatus returns how many households are in each review status.
func (d *Document) CountByStatus() map[ReviewStatus]int {
	counts := make(map[ReviewStatus]int, 3)
	for i := range d.Households {
		counts[d.Households[i].ReviewStatus]++
	}
	return counts
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{
		Settings: d.Settings,
		Version:  d.Version,
	}
	if d.Settings.LastFilePath != nil {
		v := *d.Settings.LastFilePath
		c.Settings.LastFilePath = &v
	}
	if d.Households != nil {
		c.Households = make([]Household, len(d.Households))
		for i := range d.Households {
			c.Households[i] = d.Households[i].Clone()
		}
	}
	return c
}

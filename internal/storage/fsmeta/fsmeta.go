// Package fsmeta answers path and metadata questions for the UI: whether
// a chosen path is usable, what a file looks like on disk, and creating
// directories on demand.
package fsmeta

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/yndnr/hhbook/internal/core/domain"
)

// DirMode is the permission used for directories created by MkdirAll.
const DirMode fs.FileMode = 0o755

// FileInfo describes a file on disk.
type FileInfo struct {
	Size       int64     `json:"size"`
	Modified   time.Time `json:"modified"`
	IsReadOnly bool      `json:"is_readonly"`
}

// Validate checks that path is absolute and that its parent directory
// exists, then reports whether path itself exists.
func Validate(path string) (bool, error) {
	if !filepath.IsAbs(path) {
		return false, domain.ErrInvalidPath.WithDetails("path must be absolute")
	}

	parent := filepath.Dir(path)
	if parent != path {
		stat, err := os.Stat(parent)
		if err != nil {
			return false, domain.ErrInvalidPath.WithCause(err).WithDetails("parent directory does not exist")
		}
		if !stat.IsDir() {
			return false, domain.ErrInvalidPath.WithDetails("parent is not a directory")
		}
	}

	_, err := os.Stat(path)
	return err == nil, nil
}

// Stat returns the size, modification time and writability of path.
func Stat(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound.WithDetails(path)
		}
		return nil, domain.ErrIO.Wrap(err)
	}

	return &FileInfo{
		Size:       stat.Size(),
		Modified:   stat.ModTime().UTC(),
		IsReadOnly: stat.Mode().Perm()&0o222 == 0,
	}, nil
}

// MkdirAll creates path and any missing ancestors. An existing directory
// is not an error.
func MkdirAll(path string) error {
	if err := os.MkdirAll(path, DirMode); err != nil {
		return domain.ErrIO.Wrap(err)
	}
	return nil
}

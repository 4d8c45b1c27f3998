package snapshot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/juju/clock"

	"github.com/yndnr/hhbook/internal/core/domain"
	"github.com/yndnr/hhbook/internal/storage/codec"
)

// Info contains metadata about a snapshot file.
type Info struct {
	Filename string    `json:"filename"`
	Path     string    `json:"path"`
	Created  time.Time `json:"created"`
	Size     int64     `json:"size"`
}

// Store creates and manages snapshot files. It keeps no per-document
// state; every call names the paths it works on.
type Store struct {
	clock  clock.Clock
	logger *slog.Logger

	// remove deletes a file; replaced in tests to simulate locked files.
	remove func(string) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp new snapshots.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store using the wall clock unless overridden.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:  clock.WallClock,
		logger: slog.Default(),
		remove: os.Remove,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create writes doc as a snapshot of basePath and returns the snapshot
// path. The document is encoded in memory first, so an unencodable
// document never leaves a file behind. The bytes go to a temporary
// sibling that is renamed into place once synced.
func (s *Store) Create(basePath string, doc *domain.Document) (string, error) {
	data, err := codec.Encode(doc)
	if err != nil {
		return "", err
	}

	finalPath := PathFor(basePath, s.clock.Now())
	if err := writeFileSynced(finalPath, data); err != nil {
		return "", domain.ErrIO.Wrap(err)
	}

	s.logger.Debug("snapshot created",
		"path", finalPath,
		"size", len(data),
	)
	return finalPath, nil
}

func writeFileSynced(path string, data []byte) error {
	tempPath := path + tempExtension
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, codec.FileMode)
	if err != nil {
		return err
	}
	defer os.Remove(tempPath)

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("sync: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// List returns the snapshots of stem found in dir, newest first by
// filesystem creation time. Snapshots created in the same instant are
// ordered by name, newest timestamp first. A missing directory yields an
// empty list. Entries whose metadata cannot be read are skipped.
func (s *Store) List(dir, stem string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Info{}, nil
		}
		return nil, domain.ErrIO.Wrap(err)
	}

	infos := make([]Info, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !Matches(stem, name) {
			continue
		}
		path := filepath.Join(dir, name)

		stat, err := os.Stat(path)
		if err != nil || !stat.Mode().IsRegular() {
			continue
		}
		created, err := createdAt(path, stat)
		if err != nil {
			s.logger.Debug("skipping snapshot without creation time",
				"path", path,
				"error", err,
			)
			continue
		}
		infos = append(infos, Info{
			Filename: name,
			Path:     path,
			Created:  created.UTC(),
			Size:     stat.Size(),
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if !infos[i].Created.Equal(infos[j].Created) {
			return infos[i].Created.After(infos[j].Created)
		}
		return infos[i].Filename > infos[j].Filename
	})
	return infos, nil
}

// Restore copies the snapshot at snapshotPath over targetPath byte for
// byte. The snapshot content is not validated. The target is only
// opened once the snapshot is known to be a readable regular file.
// Restoring a snapshot onto itself fails with domain.ErrInvalidPath.
func (s *Store) Restore(snapshotPath, targetPath string) error {
	src, err := os.Open(snapshotPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrNotFound.WithDetails(snapshotPath)
		}
		return domain.ErrIO.Wrap(err)
	}
	defer src.Close()

	stat, err := src.Stat()
	if err != nil {
		return domain.ErrIO.Wrap(err)
	}
	if !stat.Mode().IsRegular() {
		return domain.ErrIO.WithDetails(fmt.Sprintf("%s is not a regular file", snapshotPath))
	}
	// The target is truncated on open; it must not be the snapshot.
	if targetStat, err := os.Stat(targetPath); err == nil && os.SameFile(stat, targetStat) {
		return domain.ErrInvalidPath.WithDetails(fmt.Sprintf("%s is the snapshot being restored", targetPath))
	}

	dst, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, codec.FileMode)
	if err != nil {
		return domain.ErrIO.Wrap(err)
	}
	n, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		return domain.ErrIO.Wrap(err)
	}
	if err := dst.Close(); err != nil {
		return domain.ErrIO.Wrap(err)
	}

	s.logger.Debug("snapshot restored",
		"snapshot", snapshotPath,
		"target", targetPath,
		"bytes", n,
	)
	return nil
}

// Delete removes the snapshot at snapshotPath. Deleting a file that is
// already gone fails with domain.ErrNotFound.
func (s *Store) Delete(snapshotPath string) error {
	if _, err := os.Lstat(snapshotPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrNotFound.WithDetails(snapshotPath)
		}
		return domain.ErrIO.Wrap(err)
	}
	if err := s.remove(snapshotPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrNotFound.WithDetails(snapshotPath)
		}
		return domain.ErrIO.Wrap(err)
	}
	s.logger.Debug("snapshot deleted", "path", snapshotPath)
	return nil
}

package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/yndnr/hhbook/internal/core/domain"
	"github.com/yndnr/hhbook/internal/storage/snapshot"
)

// CheckpointResult reports what Checkpoint did.
type CheckpointResult struct {
	// SnapshotPath is empty when the checkpoint was skipped, or when the
	// prune of the same call removed the new snapshot (keep count 0).
	SnapshotPath string               `json:"snapshot_path,omitempty"`
	Prune        snapshot.PruneResult `json:"prune"`
	// Skipped is set when the document has auto_backup disabled.
	Skipped bool `json:"skipped"`
}

// CheckpointOption adjusts a single Checkpoint call.
type CheckpointOption func(*checkpointConfig)

type checkpointConfig struct {
	keep int
}

// WithKeep replaces the document's backup_count when keep > 0.
func WithKeep(keep int) CheckpointOption {
	return func(c *checkpointConfig) {
		if keep > 0 {
			c.keep = keep
		}
	}
}

// KeepCount returns the number of snapshots a checkpoint of doc keeps:
// the document's backup_count unless an option overrides it.
func KeepCount(doc *domain.Document, opts ...CheckpointOption) int {
	cfg := checkpointConfig{keep: int(doc.Settings.BackupCount)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.keep
}

// Checkpoint snapshots doc next to path and prunes the snapshots of path
// down to the document's backup_count, following the document's own
// auto_backup setting. A failed snapshot skips the prune.
func (s *Service) Checkpoint(ctx context.Context, path string, doc *domain.Document, opts ...CheckpointOption) (result CheckpointResult, err error) {
	defer func(start time.Time) {
		s.done(ctx, OpCheckpoint, start, err, !result.Skipped,
			"path", path,
			"snapshot", result.SnapshotPath,
			"skipped", result.Skipped,
		)
	}(time.Now())

	if doc == nil {
		return CheckpointResult{}, domain.ErrSerialize.WithDetails("document is nil")
	}
	if !doc.Settings.AutoBackup {
		return CheckpointResult{Skipped: true}, nil
	}

	result.SnapshotPath, err = s.CreateBackup(ctx, path, doc)
	if err != nil {
		return result, err
	}

	dir, stem := snapshot.Location(path)
	result.Prune = s.PruneBackups(ctx, dir, stem, KeepCount(doc, opts...))
	if _, statErr := os.Stat(result.SnapshotPath); errors.Is(statErr, fs.ErrNotExist) {
		result.SnapshotPath = ""
	}
	return result, nil
}

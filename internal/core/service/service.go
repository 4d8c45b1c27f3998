package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/yndnr/hhbook/internal/core/domain"
	"github.com/yndnr/hhbook/internal/infra/buildinfo"
	"github.com/yndnr/hhbook/internal/storage/codec"
	"github.com/yndnr/hhbook/internal/storage/fsmeta"
	"github.com/yndnr/hhbook/internal/storage/snapshot"
	"github.com/yndnr/hhbook/internal/telemetry/logger"
	"github.com/yndnr/hhbook/internal/telemetry/metric"
)

// Operation names used in logs and metric labels.
const (
	OpLoadDocument    = "load_document"
	OpSaveDocument    = "save_document"
	OpCreateBackup    = "create_backup"
	OpListBackups     = "list_backups"
	OpPruneBackups    = "prune_backups"
	OpRestoreBackup   = "restore_backup"
	OpDeleteBackup    = "delete_backup"
	OpValidatePath    = "validate_path"
	OpFileInfo        = "file_info"
	OpCreateDirectory = "create_directory"
	OpCheckpoint      = "checkpoint"
)

// BackupStore defines the snapshot operations the service relies on.
// *snapshot.Store implements it.
type BackupStore interface {
	Create(basePath string, doc *domain.Document) (string, error)
	List(dir, stem string) ([]snapshot.Info, error)
	Prune(dir, stem string, keepCount int) snapshot.PruneResult
	Restore(snapshotPath, targetPath string) error
	Delete(snapshotPath string) error
}

// Options configures a Service. All fields are optional.
type Options struct {
	Store   BackupStore
	Logger  *slog.Logger
	Metrics *metric.Registry
}

// Service exposes the document and backup operations.
type Service struct {
	store   BackupStore
	logger  *slog.Logger
	metrics *metric.Registry
}

// New creates a Service. A nil Store defaults to a wall-clock
// snapshot.Store; a nil Logger to slog.Default().
func New(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	store := opts.Store
	if store == nil {
		store = snapshot.NewStore(snapshot.WithLogger(log))
	}
	return &Service{
		store:   store,
		logger:  log,
		metrics: opts.Metrics,
	}
}

// log returns the service logger tagged with the request ID in ctx.
func (s *Service) log(ctx context.Context) *slog.Logger {
	if reqID := logger.RequestIDFromContext(ctx); reqID != "" {
		return s.logger.With("request_id", reqID)
	}
	return s.logger
}

// done records metrics for op and logs its outcome. Successful reads log
// at debug, successful writes at info and failures at warn.
func (s *Service) done(ctx context.Context, op string, start time.Time, err error, write bool, args ...any) {
	elapsed := time.Since(start)
	s.metrics.ObserveOperation(op, err, elapsed)

	args = append(args, "op", op, "duration", elapsed)
	l := s.log(ctx)
	switch {
	case err != nil:
		l.Warn("operation failed", append(args, "error", err, "code", domain.GetErrorCode(err))...)
	case write:
		l.Info("operation completed", args...)
	default:
		l.Debug("operation completed", args...)
	}
}

// LoadDocument reads the data file at path. A missing file yields the
// default document.
func (s *Service) LoadDocument(ctx context.Context, path string) (doc *domain.Document, err error) {
	defer func(start time.Time) {
		s.done(ctx, OpLoadDocument, start, err, false, "path", path)
	}(time.Now())

	return codec.Load(path)
}

// SaveDocument writes payload to path, replacing the file.
func (s *Service) SaveDocument(ctx context.Context, path string, payload codec.Payload) (err error) {
	defer func(start time.Time) {
		s.done(ctx, OpSaveDocument, start, err, true, "path", path)
	}(time.Now())

	return codec.Save(path, payload)
}

// CreateBackup writes a snapshot of doc next to basePath and returns the
// snapshot path.
func (s *Service) CreateBackup(ctx context.Context, basePath string, doc *domain.Document) (path string, err error) {
	defer func(start time.Time) {
		s.done(ctx, OpCreateBackup, start, err, true, "base", basePath, "snapshot", path)
	}(time.Now())

	return s.store.Create(basePath, doc)
}

// ListBackups returns the snapshots of stem in dir, newest first.
func (s *Service) ListBackups(ctx context.Context, dir, stem string) (infos []snapshot.Info, err error) {
	defer func(start time.Time) {
		s.done(ctx, OpListBackups, start, err, false, "dir", dir, "stem", stem, "count", len(infos))
	}(time.Now())

	return s.store.List(dir, stem)
}

// PruneBackups keeps the keep newest snapshots of stem in dir and deletes
// the rest. It never fails; see snapshot.Store.Prune.
func (s *Service) PruneBackups(ctx context.Context, dir, stem string, keep int) snapshot.PruneResult {
	start := time.Now()
	result := s.store.Prune(dir, stem, keep)
	s.metrics.AddPruned(result.Deleted, result.Skipped)
	s.done(ctx, OpPruneBackups, start, nil, result.Deleted > 0,
		"dir", dir,
		"stem", stem,
		"keep", keep,
		"deleted", result.Deleted,
		"skipped", result.Skipped,
	)
	return result
}

// RestoreBackup copies a snapshot over targetPath.
func (s *Service) RestoreBackup(ctx context.Context, snapshotPath, targetPath string) (err error) {
	defer func(start time.Time) {
		s.done(ctx, OpRestoreBackup, start, err, true, "snapshot", snapshotPath, "target", targetPath)
	}(time.Now())

	return s.store.Restore(snapshotPath, targetPath)
}

// DeleteBackup removes a single snapshot file.
func (s *Service) DeleteBackup(ctx context.Context, snapshotPath string) (err error) {
	defer func(start time.Time) {
		s.done(ctx, OpDeleteBackup, start, err, true, "snapshot", snapshotPath)
	}(time.Now())

	return s.store.Delete(snapshotPath)
}

// ValidatePath reports whether path exists after checking that it is
// absolute and its parent directory exists.
func (s *Service) ValidatePath(ctx context.Context, path string) (exists bool, err error) {
	defer func(start time.Time) {
		s.done(ctx, OpValidatePath, start, err, false, "path", path, "exists", exists)
	}(time.Now())

	return fsmeta.Validate(path)
}

// FileInfo returns size, modification time and writability of path.
func (s *Service) FileInfo(ctx context.Context, path string) (info *fsmeta.FileInfo, err error) {
	defer func(start time.Time) {
		s.done(ctx, OpFileInfo, start, err, false, "path", path)
	}(time.Now())

	return fsmeta.Stat(path)
}

// CreateDirectory creates path and its missing ancestors.
func (s *Service) CreateDirectory(ctx context.Context, path string) (err error) {
	defer func(start time.Time) {
		s.done(ctx, OpCreateDirectory, start, err, true, "path", path)
	}(time.Now())

	return fsmeta.MkdirAll(path)
}

// AppVersion returns the application version.
func (s *Service) AppVersion() string {
	return buildinfo.Version
}

// SystemInfo returns the host platform and application version.
func (s *Service) SystemInfo() buildinfo.SystemInfo {
	return buildinfo.System()
}

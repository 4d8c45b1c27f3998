package autobackup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaolacci/murmur3"
	"golang.org/x/time/rate"

	"github.com/yndnr/hhbook/internal/core/domain"
	"github.com/yndnr/hhbook/internal/core/service"
	"github.com/yndnr/hhbook/internal/storage/codec"
)

// DefaultMinInterval is the minimum spacing between two snapshots. One
// second keeps snapshot names, which have second resolution, distinct.
const DefaultMinInterval = time.Second

// Checkpointer takes a snapshot of a document and prunes old ones.
// *service.Service implements it.
type Checkpointer interface {
	Checkpoint(ctx context.Context, path string, doc *domain.Document, opts ...service.CheckpointOption) (service.CheckpointResult, error)
}

type fingerprint struct {
	hi, lo uint64
}

func fingerprintOf(data []byte) fingerprint {
	hi, lo := murmur3.Sum128(data)
	return fingerprint{hi: hi, lo: lo}
}

// Watcher snapshots one data file on change.
type Watcher struct {
	path    string
	svc     Checkpointer
	limiter *rate.Limiter
	keep    int
	logger  *slog.Logger

	last    fingerprint
	hasLast bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithMinInterval sets the minimum spacing between snapshots. A value
// <= 0 keeps DefaultMinInterval.
func WithMinInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithKeep overrides the document's backup_count when keep > 0.
func WithKeep(keep int) Option {
	return func(w *Watcher) {
		w.keep = keep
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a Watcher for the data file at path.
func New(path string, svc Checkpointer, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("autobackup: resolve %s: %w", path, err)
	}
	w := &Watcher{
		path:    abs,
		svc:     svc,
		limiter: rate.NewLimiter(rate.Every(DefaultMinInterval), 1),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Prime records the current content of the file as already backed up,
// so starting the watcher does not snapshot an unchanged file.
func (w *Watcher) Prime() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return
	}
	w.last, w.hasLast = fingerprintOf(data), true
}

// Sync checkpoints the file if its content changed since the last
// snapshot. It waits for the rate limiter first. The returned bool is
// false when nothing was done because the file is missing or unchanged.
func (w *Watcher) Sync(ctx context.Context) (service.CheckpointResult, bool, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return service.CheckpointResult{}, false, fmt.Errorf("autobackup: throttle: %w", err)
	}

	data, err := os.ReadFile(w.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return service.CheckpointResult{}, false, nil
		}
		return service.CheckpointResult{}, false, domain.ErrIO.Wrap(err)
	}

	sum := fingerprintOf(data)
	if w.hasLast && sum == w.last {
		return service.CheckpointResult{}, false, nil
	}

	doc, err := codec.Decode(data)
	if err != nil {
		return service.CheckpointResult{}, false, err
	}

	result, err := w.svc.Checkpoint(ctx, w.path, doc, service.WithKeep(w.keep))
	if err != nil {
		return result, false, err
	}
	if !result.Skipped {
		w.last, w.hasLast = sum, true
	}
	return result, true, nil
}

// Run watches the file until ctx is done. Failed checkpoints are logged
// and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("autobackup: create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("autobackup: watch %s: %w", dir, err)
	}

	w.Prime()
	w.logger.Info("auto-backup watcher started", "path", w.path)
	defer w.logger.Info("auto-backup watcher stopped", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.handle(ctx, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("auto-backup watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	result, changed, err := w.Sync(ctx)
	switch {
	case err != nil:
		if ctx.Err() != nil {
			return
		}
		w.logger.Warn("auto-backup failed",
			"path", w.path,
			"op", event.Op.String(),
			"error", err,
		)
	case !changed:
		w.logger.Debug("auto-backup skipped, content unchanged", "path", w.path)
	case result.Skipped:
		w.logger.Debug("auto-backup disabled by document settings", "path", w.path)
	default:
		w.logger.Info("auto-backup created",
			"snapshot", result.SnapshotPath,
			"deleted", result.Prune.Deleted,
		)
	}
}

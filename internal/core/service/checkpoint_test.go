package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yndnr/hhbook/internal/core/domain"
)

func TestService_Checkpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc := domain.DefaultDocument()
	doc.Settings.BackupCount = 2

	var last CheckpointResult
	for i := 0; i < 4; i++ {
		result, err := f.svc.Checkpoint(ctx, f.doc, doc)
		if err != nil {
			t.Fatalf("Checkpoint() error = %v", err)
		}
		if result.Skipped || result.SnapshotPath == "" {
			t.Fatalf("Checkpoint() = %+v, want a snapshot", result)
		}
		last = result
		f.clock.Advance(time.Second)
	}

	if last.Prune.Kept != 2 || last.Prune.Deleted != 1 {
		t.Errorf("last prune = %+v, want 2 kept, 1 deleted", last.Prune)
	}
	infos, err := f.svc.ListBackups(ctx, f.dir, "house")
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len(ListBackups()) = %d, want 2", len(infos))
	}
	if infos[0].Path != last.SnapshotPath {
		t.Errorf("newest = %q, want %q", infos[0].Path, last.SnapshotPath)
	}
}

func TestService_Checkpoint_AutoBackupDisabled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc := domain.DefaultDocument()
	doc.Settings.AutoBackup = false

	result, err := f.svc.Checkpoint(ctx, f.doc, doc)
	if err != nil {
		t.Fatalf("Checkpoint() error = %v", err)
	}
	if !result.Skipped || result.SnapshotPath != "" {
		t.Errorf("Checkpoint() = %+v, want skipped", result)
	}

	infos, _ := f.svc.ListBackups(ctx, f.dir, "house")
	if len(infos) != 0 {
		t.Errorf("snapshots created with auto_backup off: %d", len(infos))
	}
}

func TestService_Checkpoint_WithKeep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc := domain.DefaultDocument()
	doc.Settings.BackupCount = 1

	for i := 0; i < 5; i++ {
		if _, err := f.svc.Checkpoint(ctx, f.doc, doc, WithKeep(3)); err != nil {
			t.Fatalf("Checkpoint() error = %v", err)
		}
		f.clock.Advance(time.Second)
	}

	infos, _ := f.svc.ListBackups(ctx, f.dir, "house")
	if len(infos) != 3 {
		t.Errorf("len(ListBackups()) = %d, want 3", len(infos))
	}

	// Zero leaves the document setting in charge.
	if _, err := f.svc.Checkpoint(ctx, f.doc, doc, WithKeep(0)); err != nil {
		t.Fatalf("Checkpoint() error = %v", err)
	}
	infos, _ = f.svc.ListBackups(ctx, f.dir, "house")
	if len(infos) != 1 {
		t.Errorf("len(ListBackups()) = %d, want 1", len(infos))
	}
}

func TestService_Checkpoint_KeepZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc := domain.DefaultDocument()
	doc.Settings.BackupCount = 0

	result, err := f.svc.Checkpoint(ctx, f.doc, doc)
	if err != nil {
		t.Fatalf("Checkpoint() error = %v", err)
	}
	if result.SnapshotPath != "" {
		t.Errorf("SnapshotPath = %q, want empty once pruned away", result.SnapshotPath)
	}
	if result.Skipped || result.Prune.Deleted != 1 || result.Prune.Kept != 0 {
		t.Errorf("Checkpoint() = %+v, want one snapshot created and deleted", result)
	}
	infos, _ := f.svc.ListBackups(ctx, f.dir, "house")
	if len(infos) != 0 {
		t.Errorf("len(ListBackups()) = %d, want 0", len(infos))
	}
}

func TestService_Checkpoint_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Checkpoint(ctx, f.doc, nil); !errors.Is(err, domain.ErrSerialize) {
		t.Errorf("Checkpoint(nil) error = %v, want ErrSerialize", err)
	}

	missing := f.dir + "/missing/house.json"
	result, err := f.svc.Checkpoint(ctx, missing, domain.DefaultDocument())
	if !errors.Is(err, domain.ErrIO) {
		t.Errorf("Checkpoint(missing dir) error = %v, want ErrIO", err)
	}
	if result.Prune != (CheckpointResult{}).Prune {
		t.Errorf("prune ran after failed snapshot: %+v", result.Prune)
	}
}

func TestKeepCount(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Settings.BackupCount = 5

	tests := []struct {
		name string
		opts []CheckpointOption
		want int
	}{
		{"document setting", nil, 5},
		{"override", []CheckpointOption{WithKeep(2)}, 2},
		{"zero override ignored", []CheckpointOption{WithKeep(0)}, 5},
		{"negative override ignored", []CheckpointOption{WithKeep(-1)}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeepCount(doc, tt.opts...); got != tt.want {
				t.Errorf("KeepCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

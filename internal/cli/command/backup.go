package command

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hhbook/internal/core/domain"
	"github.com/yndnr/hhbook/internal/storage/autobackup"
	"github.com/yndnr/hhbook/internal/storage/snapshot"
)

// BackupCommand returns the backup subcommand group.
func BackupCommand() *cli.Command {
	return &cli.Command{
		Name:    "backup",
		Aliases: []string{"bk"},
		Usage:   "Create, list, prune and restore snapshots",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Snapshot a data file next to it",
				ArgsUsage: "[PATH]",
				Action:    backupCreate,
			},
			{
				Name:      "list",
				Usage:     "List snapshots of a data file, newest first",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Snapshot directory (instead of deriving it from PATH)",
					},
					&cli.StringFlag{
						Name:  "stem",
						Usage: "Snapshot stem, used with --dir",
					},
				},
				Action: backupList,
			},
			{
				Name:      "prune",
				Usage:     "Delete all but the newest snapshots",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "keep",
						Aliases: []string{"k"},
						Usage:   "Snapshots to keep (default: config keep, else the document's backup_count)",
					},
				},
				Action: backupPrune,
			},
			{
				Name:      "restore",
				Usage:     "Copy a snapshot over the data file",
				ArgsUsage: "SNAPSHOT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "target",
						Aliases: []string{"t"},
						Usage:   "File to restore into (default: --document or config document)",
					},
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Overwrite an existing target",
					},
				},
				Action: backupRestore,
			},
			{
				Name:      "delete",
				Usage:     "Delete one snapshot",
				ArgsUsage: "SNAPSHOT",
				Action:    backupDelete,
			},
			{
				Name:      "watch",
				Usage:     "Snapshot the data file whenever it changes",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "min-interval",
						Usage: "Minimum time between snapshots",
						Value: autobackup.DefaultMinInterval,
					},
					&cli.IntFlag{
						Name:    "keep",
						Aliases: []string{"k"},
						Usage:   "Snapshots to keep (default: config keep, else the document's backup_count)",
					},
				},
				Action: backupWatch,
			},
		},
	}
}

// backupRow is the table view of a snapshot.Info.
type backupRow struct {
	Filename string    `json:"filename"`
	Created  time.Time `json:"created" table:"age"`
	Size     int64     `json:"size" table:"bytes"`
	Path     string    `json:"path" table:"wide"`
}

// existingDocument returns the document path and fails if it is absent.
func existingDocument(c *cli.Context) (string, error) {
	path, err := documentPath(c)
	if err != nil {
		return "", err
	}
	exists, err := getRuntime(c).svc.ValidatePath(c.Context, path)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrNotFound.WithDetails(path)
	}
	return path, nil
}

// keepFlag returns --keep if set, else the configured keep (0 = unset).
func keepFlag(c *cli.Context) (int, error) {
	if c.IsSet("keep") {
		keep := c.Int("keep")
		if keep < 0 {
			return 0, fmt.Errorf("--keep must be >= 0, got %d", keep)
		}
		return keep, nil
	}
	return getRuntime(c).cfg.Keep, nil
}

func backupCreate(c *cli.Context) error {
	rt := getRuntime(c)
	path, err := existingDocument(c)
	if err != nil {
		return err
	}

	doc, err := rt.svc.LoadDocument(c.Context, path)
	if err != nil {
		return err
	}
	snap, err := rt.svc.CreateBackup(c.Context, path, doc)
	if err != nil {
		return err
	}
	return message(c, map[string]string{"backup_path": snap}, "Created %s", snap)
}

func backupList(c *cli.Context) error {
	rt := getRuntime(c)

	dir, stem := c.String("dir"), c.String("stem")
	if dir == "" {
		path, err := documentPath(c)
		if err != nil {
			return err
		}
		dir, stem = snapshot.Location(path)
	}

	infos, err := rt.svc.ListBackups(c.Context, dir, stem)
	if err != nil {
		return err
	}

	rows := make([]backupRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, backupRow{
			Filename: info.Filename,
			Created:  info.Created,
			Size:     info.Size,
			Path:     info.Path,
		})
	}
	return render(c, infos, rows)
}

func backupPrune(c *cli.Context) error {
	rt := getRuntime(c)
	path, err := documentPath(c)
	if err != nil {
		return err
	}

	keep, err := keepFlag(c)
	if err != nil {
		return err
	}
	if !c.IsSet("keep") && keep == 0 {
		doc, err := rt.svc.LoadDocument(c.Context, path)
		if err != nil {
			return err
		}
		keep = int(doc.Settings.BackupCount)
	}

	dir, stem := snapshot.Location(path)
	return render(c, rt.svc.PruneBackups(c.Context, dir, stem, keep), nil)
}

func backupRestore(c *cli.Context) error {
	rt := getRuntime(c)
	snap, err := requireArg(c, "SNAPSHOT")
	if err != nil {
		return err
	}

	target := c.String("target")
	if target == "" {
		target = c.String("document")
	}
	if target == "" {
		target = rt.cfg.Document
	}
	if target == "" {
		return fmt.Errorf("no restore target: use --target, --document or set document in %s", rt.cfgPath)
	}

	exists, err := rt.svc.ValidatePath(c.Context, target)
	if err != nil {
		return err
	}
	if exists && !c.Bool("yes") {
		return fmt.Errorf("%s exists; pass --yes to overwrite it", target)
	}

	if err := rt.svc.RestoreBackup(c.Context, snap, target); err != nil {
		return err
	}
	return message(c, map[string]string{"backup_path": snap, "target_path": target}, "Restored %s to %s", snap, target)
}

func backupDelete(c *cli.Context) error {
	snap, err := requireArg(c, "SNAPSHOT")
	if err != nil {
		return err
	}
	if err := getRuntime(c).svc.DeleteBackup(c.Context, snap); err != nil {
		return err
	}
	return message(c, map[string]string{"deleted": snap}, "Deleted %s", snap)
}

func backupWatch(c *cli.Context) error {
	rt := getRuntime(c)
	path, err := documentPath(c)
	if err != nil {
		return err
	}
	keep, err := keepFlag(c)
	if err != nil {
		return err
	}

	w, err := autobackup.New(path, rt.svc,
		autobackup.WithMinInterval(c.Duration("min-interval")),
		autobackup.WithKeep(keep),
		autobackup.WithLogger(rt.log),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(writer(c), "Watching %s (Ctrl-C to stop)\n", w.Path())
	return w.Run(ctx)
}

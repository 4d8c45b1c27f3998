package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hhbook/internal/core/domain"
	"github.com/yndnr/hhbook/internal/storage/codec"
)

// DocCommand returns the doc subcommand group.
func DocCommand() *cli.Command {
	return &cli.Command{
		Name:    "doc",
		Aliases: []string{"document"},
		Usage:   "Inspect and create data files",
		Subcommands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "List the households of a data file",
				ArgsUsage: "[PATH]",
				Action:    docShow,
			},
			{
				Name:      "init",
				Usage:     "Write an empty data file",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: docInit,
			},
			{
				Name:      "check",
				Usage:     "Parse and validate a data file and print a summary",
				ArgsUsage: "[PATH]",
				Action:    docCheck,
			},
		},
	}
}

type householdRow struct {
	ID         uint32  `json:"id"`
	Name       string  `json:"household_name"`
	Members    int     `json:"members"`
	Segment    string  `json:"segment"`
	Status     string  `json:"review_status"`
	ReviewType string  `json:"review_type" table:"wide"`
	NextReview string  `json:"next_review_due"`
	Score      float64 `json:"auc" table:"wide"`
	Priority   string  `json:"priority_flag" table:"wide"`
}

func householdRows(doc *domain.Document) []householdRow {
	rows := make([]householdRow, 0, len(doc.Households))
	for _, h := range doc.Households {
		rows = append(rows, householdRow{
			ID:         h.ID,
			Name:       h.Name,
			Members:    len(h.Persons),
			Segment:    string(h.Segment),
			Status:     string(h.ReviewStatus),
			ReviewType: string(h.ReviewType),
			NextReview: h.NextReviewDue,
			Score:      h.Score,
			Priority:   h.PriorityFlag,
		})
	}
	return rows
}

func docShow(c *cli.Context) error {
	path, err := documentPath(c)
	if err != nil {
		return err
	}
	doc, err := getRuntime(c).svc.LoadDocument(c.Context, path)
	if err != nil {
		return err
	}
	return render(c, doc, householdRows(doc))
}

func docInit(c *cli.Context) error {
	rt := getRuntime(c)
	path, err := documentPath(c)
	if err != nil {
		return err
	}

	exists, err := rt.svc.ValidatePath(c.Context, path)
	if err != nil {
		return err
	}
	if exists && !c.Bool("force") {
		return fmt.Errorf("%s already exists; pass --force to overwrite", path)
	}

	if err := rt.svc.SaveDocument(c.Context, path, codec.DocumentPayload{Doc: domain.DefaultDocument()}); err != nil {
		return err
	}
	return message(c, map[string]string{"path": path}, "Created %s", path)
}

// docSummary is the result of doc check.
type docSummary struct {
	Path        string `json:"path"`
	Version     string `json:"version"`
	Households  int    `json:"households"`
	Members     int    `json:"members"`
	Scheduled   int    `json:"scheduled"`
	Completed   int    `json:"completed"`
	Overdue     int    `json:"overdue"`
	Theme       string `json:"theme"`
	AutoBackup  bool   `json:"auto_backup"`
	BackupCount uint32 `json:"backup_count"`
}

func docCheck(c *cli.Context) error {
	rt := getRuntime(c)
	path, err := documentPath(c)
	if err != nil {
		return err
	}

	// Load treats a missing file as a new document; check does not.
	exists, err := rt.svc.ValidatePath(c.Context, path)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound.WithDetails(path)
	}

	doc, err := rt.svc.LoadDocument(c.Context, path)
	if err != nil {
		return err
	}

	counts := doc.CountByStatus()
	return render(c, docSummary{
		Path:        path,
		Version:     doc.Version,
		Households:  len(doc.Households),
		Members:     doc.MemberCount(),
		Scheduled:   counts[domain.StatusScheduled],
		Completed:   counts[domain.StatusCompleted],
		Overdue:     counts[domain.StatusOverdue],
		Theme:       string(doc.Settings.Theme),
		AutoBackup:  doc.Settings.AutoBackup,
		BackupCount: doc.Settings.BackupCount,
	}, nil)
}

package command

import (
	"time"

	"github.com/urfave/cli/v2"
)

// FileCommand returns the file subcommand group.
func FileCommand() *cli.Command {
	return &cli.Command{
		Name:  "file",
		Usage: "Path checks and file metadata",
		Subcommands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Check that a path is absolute with an existing parent",
				ArgsUsage: "PATH",
				Action:    fileValidate,
			},
			{
				Name:      "info",
				Usage:     "Show size, modification time and read-only state",
				ArgsUsage: "PATH",
				Action:    fileInfo,
			},
			{
				Name:      "mkdir",
				Usage:     "Create a directory and its parents",
				ArgsUsage: "PATH",
				Action:    fileMkdir,
			},
		},
	}
}

type validateResult struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// fileInfoRow is the table view of fsmeta.FileInfo.
type fileInfoRow struct {
	Path       string    `json:"path"`
	Size       int64     `json:"size" table:"bytes"`
	Modified   time.Time `json:"modified"`
	IsReadOnly bool      `json:"is_readonly"`
}

func fileValidate(c *cli.Context) error {
	// Relative paths are rejected by the service, so the argument is
	// passed through unresolved.
	path := c.Args().First()
	exists, err := getRuntime(c).svc.ValidatePath(c.Context, path)
	if err != nil {
		return err
	}
	return render(c, validateResult{Path: path, Exists: exists}, nil)
}

func fileInfo(c *cli.Context) error {
	path, err := requireArg(c, "PATH")
	if err != nil {
		return err
	}
	info, err := getRuntime(c).svc.FileInfo(c.Context, path)
	if err != nil {
		return err
	}
	return render(c, info, &fileInfoRow{
		Path:       path,
		Size:       info.Size,
		Modified:   info.Modified,
		IsReadOnly: info.IsReadOnly,
	})
}

func fileMkdir(c *cli.Context) error {
	path, err := requireArg(c, "PATH")
	if err != nil {
		return err
	}
	if err := getRuntime(c).svc.CreateDirectory(c.Context, path); err != nil {
		return err
	}
	return message(c, map[string]string{"path": path}, "Created %s", path)
}

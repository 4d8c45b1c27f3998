package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/hhbook/internal/infra/buildinfo"
)

// SystemCommand returns the system subcommand group.
func SystemCommand() *cli.Command {
	return &cli.Command{
		Name:    "system",
		Aliases: []string{"sys"},
		Usage:   "Platform and build information",
		Subcommands: []*cli.Command{
			{
				Name:   "info",
				Usage:  "Show OS, architecture and version",
				Action: systemInfo,
			},
		},
	}
}

type systemInfoResult struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	AppVersion string `json:"app_version"`
	Commit     string `json:"commit" table:"wide"`
	BuildTime  string `json:"build_time" table:"wide"`
	GoVersion  string `json:"go_version"`
}

func systemInfo(c *cli.Context) error {
	sys := getRuntime(c).svc.SystemInfo()
	build := buildinfo.Get()
	return render(c, systemInfoResult{
		OS:         sys.OS,
		Arch:       sys.Arch,
		AppVersion: sys.AppVersion,
		Commit:     build.Commit,
		BuildTime:  build.BuildTime,
		GoVersion:  build.GoVersion,
	}, nil)
}

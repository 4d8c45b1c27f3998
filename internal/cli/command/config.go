package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hhbook/internal/cli/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective CLI configuration",
				Action: configShow,
			},
			{
				Name:  "init",
				Usage: "Write a CLI config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing config file",
					},
				},
				Action: configInit,
			},
		},
	}
}

type configView struct {
	Path     string `json:"path"`
	Document string `json:"document"`
	Output   string `json:"output"`
	Keep     int    `json:"keep"`
}

func configShow(c *cli.Context) error {
	rt := getRuntime(c)
	return render(c, configView{
		Path:     rt.cfgPath,
		Document: rt.cfg.Document,
		Output:   rt.cfg.Output,
		Keep:     rt.cfg.Keep,
	}, nil)
}

// configInit writes the effective configuration, with --document and
// --output applied, to the --config path.
func configInit(c *cli.Context) error {
	rt := getRuntime(c)

	if _, err := os.Stat(rt.cfgPath); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists; pass --force to overwrite", rt.cfgPath)
	}

	cfg := *rt.cfg
	if doc := c.String("document"); doc != "" {
		abs, err := filepath.Abs(doc)
		if err != nil {
			return err
		}
		cfg.Document = abs
	}
	if out := c.String("output"); out != "" {
		cfg.Output = out
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(&cfg, rt.cfgPath); err != nil {
		return err
	}
	return message(c, map[string]string{"path": rt.cfgPath}, "Wrote %s", rt.cfgPath)
}

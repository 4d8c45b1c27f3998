package command

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hhbook/internal/cli/config"
	"github.com/yndnr/hhbook/internal/cli/output"
	"github.com/yndnr/hhbook/internal/core/service"
	"github.com/yndnr/hhbook/internal/infra/buildinfo"
	"github.com/yndnr/hhbook/internal/telemetry/logger"
)

const runtimeKey = "runtime"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                 "hhbook",
		Usage:                "Household review book: documents and backups",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			DocCommand(),
			BackupCommand(),
			FileCommand(),
			SystemCommand(),
			ConfigCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "CLI config file",
			EnvVars: []string{"HHBOOK_CLI_CONFIG"},
			Value:   config.DefaultConfigPath(),
		},
		&cli.StringFlag{
			Name:    "document",
			Aliases: []string{"d"},
			Usage:   "Data file used when a command is given no path",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log operations to stderr",
		},
	}
}

// runtime is the per-invocation state shared by all commands.
type runtime struct {
	cfgPath string
	cfg     *config.CLIConfig
	svc     *service.Service
	log     *slog.Logger
}

func setup(c *cli.Context) error {
	cfgPath := c.String("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level := "warn"
	if c.Bool("verbose") {
		level = "debug"
	}
	log, err := logger.New(logger.Config{Level: level, Format: "text", Output: errWriter(c)})
	if err != nil {
		return err
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[runtimeKey] = &runtime{
		cfgPath: cfgPath,
		cfg:     cfg,
		svc:     service.New(service.Options{Logger: log}),
		log:     log,
	}
	return nil
}

func getRuntime(c *cli.Context) *runtime {
	rt, _ := c.App.Metadata[runtimeKey].(*runtime)
	return rt
}

func writer(c *cli.Context) io.Writer {
	return c.App.Writer
}

func errWriter(c *cli.Context) io.Writer {
	return c.App.ErrWriter
}

// outputFormat resolves --output, falling back to the configured format.
func outputFormat(c *cli.Context) (output.Format, error) {
	name := c.String("output")
	if name == "" {
		name = getRuntime(c).cfg.Output
	}
	return output.ParseFormat(name)
}

// render writes data in the selected format. For table output, table is
// rendered instead when it is non-nil.
func render(c *cli.Context, data any, table any) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}
	if format == output.FormatTable && table != nil {
		data = table
	}
	return output.NewFormatter(format, c.Bool("wide")).Format(writer(c), data)
}

// message prints a confirmation line in table mode; structured formats
// print data instead.
func message(c *cli.Context, data any, format string, args ...any) error {
	f, err := outputFormat(c)
	if err != nil {
		return err
	}
	if f == output.FormatTable {
		_, err := fmt.Fprintf(writer(c), format+"\n", args...)
		return err
	}
	return output.NewFormatter(f, false).Format(writer(c), data)
}

// documentPath returns the first argument, --document or the configured
// document, made absolute.
func documentPath(c *cli.Context) (string, error) {
	path := c.Args().First()
	if path == "" {
		path = c.String("document")
	}
	if path == "" {
		path = getRuntime(c).cfg.Document
	}
	if path == "" {
		return "", fmt.Errorf("no document path: pass one, use --document or set document in %s", getRuntime(c).cfgPath)
	}
	return filepath.Abs(path)
}

// requireArg returns the first argument or a usage error naming it.
func requireArg(c *cli.Context, name string) (string, error) {
	arg := c.Args().First()
	if arg == "" {
		return "", fmt.Errorf("missing %s argument", name)
	}
	return filepath.Abs(arg)
}

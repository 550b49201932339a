package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/config"
	"github.com/pseudomuto/mssqlsplit/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the mssqlsplit CLI application and schedules it to run when the
// fx application starts. The process exit code reflects the outcome: 0 on
// success, 1 when the command returned an error.
//
// Splitting is the root action, so the common case needs no subcommand:
//
//	mssqlsplit dump.sql             # output directory taken from USE [db]
//	mssqlsplit dump.sql out/        # explicit output directory
//	mssqlsplit list dump.sql        # show what would be written
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Version.Version, p.Config, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", errAttr(err))
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// newApp builds the root command. cfg is replaced in place by the loaded config
// file, so subcommands holding the same pointer see the loaded values.
func newApp(version string, cfg *config.Config, commands []*cli.Command) *cli.Command {
	if cfg == nil {
		cfg = config.Defaults()
	}

	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the mssqlsplit config file",
			Sources: cli.EnvVars(consts.ConfigEnvVar),
			Value:   consts.DefaultConfigFile,
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log warnings and errors",
		},
	}, splitFlags()...)

	return &cli.Command{
		Name:      "mssqlsplit",
		Usage:     "Split a SQL Server object dump into one file per object",
		ArgsUsage: "<dump_file_path> [<output_directory>]",
		Description: `mssqlsplit reads a script generated by SQL Server Management Studio and
writes every function, stored procedure and table to its own file:

  <output_directory>/FN/<schema>_<name>_FN.sql
  <output_directory>/SP/<schema>_<name>_SP.sql
  <output_directory>/TB/<schema>_<name>_TB.sql

When no output directory is given, the database named by the USE [<name>]
statement on the first line of the dump is used.`,
		Version:  version,
		Flags:    flags,
		Before:   setup(cfg),
		Action:   splitAction(cfg),
		Commands: commands,
	}
}

// setup installs the log handler and loads the config file named by --config.
func setup(cfg *config.Config) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		level := slog.LevelInfo
		if cmd.Bool("quiet") {
			level = slog.LevelWarn
		}

		w := cmd.Root().ErrWriter
		if w == nil {
			w = os.Stderr
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))

		// An explicit --config (or MSSQLSPLIT_CONFIG) must exist; the default
		// file is optional.
		load := config.LoadConfigFileOrDefaults
		if cmd.IsSet("config") {
			load = config.LoadConfigFile
		}

		loaded, err := load(cmd.String("config"))
		if err != nil {
			return ctx, errors.Wrap(err, "failed to load config")
		}

		*cfg = *loaded
		return ctx, nil
	}
}

// errAttr logs err by its message. Errors from pkg/errors carry a stack trace
// that slog would otherwise print in full.
func errAttr(err error) slog.Attr {
	return slog.String("err", err.Error())
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/config"
	"github.com/pseudomuto/mssqlsplit/pkg/dump"
	"github.com/pseudomuto/mssqlsplit/pkg/layout"
	"github.com/urfave/cli/v3"
)

// ErrNoOutputDirectory is returned when no output directory was given and the
// dump does not start with a USE [<database>] statement.
var ErrNoOutputDirectory = errors.New("no output directory given and no USE [<database>] statement on the first line of the dump")

// runOptions is the effective configuration of a run: config file values with
// command line flags applied on top.
type runOptions struct {
	delimiter  string
	policy     dump.FailurePolicy
	filter     *dump.Filter
	allowEmpty bool
	layout     layout.Options
}

// splitFlags are declared on the root command and inherited by subcommands.
func splitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "on-error",
			Usage: "what to do with a chunk that has no CREATE signature: fail or collect",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringFlag{
			Name:  "collisions",
			Usage: "what to do when two objects map to the same file: overwrite or error",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "only write objects whose file name (e.g. addr_GetAddressTypes_SP) matches the glob",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "skip objects whose file name matches the glob",
		},
		&cli.BoolFlag{
			Name:  "keep-dates",
			Usage: "keep the Script Date timestamps in written files",
		},
		&cli.BoolFlag{
			Name:  "manifest",
			Usage: "write an objects.sum file with a hash of every object file",
		},
		&cli.BoolFlag{
			Name:  "allow-empty",
			Usage: "treat a dump without objects as success",
			Value: true,
		},
	}
}

// resolveOptions merges cfg with the flags that were explicitly set on cmd.
func resolveOptions(cfg *config.Config, cmd *cli.Command) (*runOptions, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}

	onError := cfg.OnError
	if cmd.IsSet("on-error") {
		onError = cmd.String("on-error")
	}

	policy, err := dump.ParseFailurePolicy(onError)
	if err != nil {
		return nil, err
	}

	collisions := cfg.Collisions
	if cmd.IsSet("collisions") {
		collisions = cmd.String("collisions")
	}

	collisionPolicy, err := layout.ParseCollisionPolicy(collisions)
	if err != nil {
		return nil, err
	}

	include, exclude := cfg.Include, cfg.Exclude
	if cmd.IsSet("include") {
		include = cmd.StringSlice("include")
	}
	if cmd.IsSet("exclude") {
		exclude = cmd.StringSlice("exclude")
	}

	filter, err := dump.NewFilter(include, exclude)
	if err != nil {
		return nil, err
	}

	opts := &runOptions{
		delimiter:  cfg.Delimiter,
		policy:     policy,
		filter:     filter,
		allowEmpty: cfg.AllowEmpty,
		layout: layout.Options{
			Collisions: collisionPolicy,
			KeepDates:  !cfg.StripScriptDates,
			Manifest:   cfg.Manifest,
		},
	}

	if cmd.IsSet("keep-dates") {
		opts.layout.KeepDates = cmd.Bool("keep-dates")
	}
	if cmd.IsSet("manifest") {
		opts.layout.Manifest = cmd.Bool("manifest")
	}
	if cmd.IsSet("allow-empty") {
		opts.allowEmpty = cmd.Bool("allow-empty")
	}

	return opts, nil
}

// splitAction is the root action:
//
//	mssqlsplit [flags] <dump_file_path> [<output_directory>]
//
// Every object in the dump is written to <output_directory>/<type code>/. When
// the output directory is omitted, the name from the dump's USE [<database>]
// line is used instead.
//
// Examples:
//
//	# Write to ./AddressBook when the dump starts with USE [AddressBook]
//	mssqlsplit AddressBook.sql
//
//	# Write procedures only, failing on name collisions
//	mssqlsplit --include '*_SP' --collisions error AddressBook.sql out/
func splitAction(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() < 1 || cmd.Args().Len() > 2 {
			return errors.New("a dump file path and an optional output directory are required")
		}

		opts, err := resolveOptions(cfg, cmd)
		if err != nil {
			return err
		}

		res, err := split(cmd.Args().Get(0), cmd.Args().Get(1), opts)
		if res != nil {
			fmt.Fprintf(cmd.Root().Writer, "Wrote %d files to %s\n", len(res.Files), res.Root)
		}

		return err
	}
}

// split runs the whole pipeline for one dump. If some chunks could not be
// classified under the collect policy, the remaining objects are still written
// and the combined error is returned together with the result.
func split(path, outDir string, opts *runOptions) (*layout.Result, error) {
	text, objects, parseErr := readObjects(path, opts)
	if objects == nil {
		return nil, parseErr
	}

	root, err := outputDirectory(text, outDir)
	if err != nil {
		return nil, err
	}

	res, err := layout.New(root, opts.layout).Write(objects)
	if err != nil {
		return nil, err
	}

	if parseErr != nil {
		return res, errors.Wrap(parseErr, "some objects could not be classified")
	}

	return res, nil
}

// readObjects loads, segments, classifies and filters a dump. The returned
// objects slice is nil exactly when nothing should be written.
func readObjects(path string, opts *runOptions) (string, []*dump.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	text := string(data)
	chunks := dump.SegmentWith(text, opts.delimiter)
	if len(chunks) == 0 && !opts.allowEmpty {
		return text, nil, dump.ErrNoObjects
	}

	objects, err := dump.ParseAll(chunks, opts.policy)
	if objects == nil {
		return text, nil, err
	}

	slog.Info("Parsed database objects", "count", len(objects))
	for _, obj := range objects {
		slog.Debug("Found object", "kind", obj.Kind(), "name", obj.Name())
	}

	kept := opts.filter.Apply(objects)
	if skipped := len(objects) - len(kept); skipped > 0 {
		slog.Info("Filtered database objects", "kept", len(kept), "skipped", skipped)
	}

	return text, kept, err
}

// outputDirectory prefers an explicit directory over the database name.
func outputDirectory(text, outDir string) (string, error) {
	if outDir != "" {
		slog.Info("Command line override of output directory", "dir", outDir)
		return outDir, nil
	}

	if name, ok := dump.ExtractDatabaseName(text); ok {
		slog.Info("Set output directory based on database instance name", "dir", name)
		return name, nil
	}

	return "", ErrNoOutputDirectory
}

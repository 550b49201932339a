package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type listParams struct {
	fx.In

	Config *config.Config
}

// list creates the list command, which prints the objects of a dump without
// writing any files.
//
// Each line shows the type code, schema ("-" for an unqualified name), qualified
// name, script date taken from the object header ("-" when absent) and the path
// the object would be written to:
//
//	TYPE  SCHEMA  NAME                             SCRIPT DATE           PATH
//	FN    addr    [addr].[InstitutionCountryCode]  1/2/2020 10:00:00 AM  FN/addr_InstitutionCountryCode_FN.sql
//
// The --include, --exclude and --on-error flags of the root command apply.
//
// Example usage:
//
//	mssqlsplit list AddressBook.sql
//	mssqlsplit --include 'addr_*' list AddressBook.sql
func list(p listParams) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the objects in a dump",
		ArgsUsage: "<dump_file_path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one dump file path is required")
			}

			opts, err := resolveOptions(p.Config, cmd)
			if err != nil {
				return err
			}

			_, objects, parseErr := readObjects(cmd.Args().First(), opts)
			if objects == nil {
				return parseErr
			}

			w := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tSCHEMA\tNAME\tSCRIPT DATE\tPATH")
			for _, obj := range objects {
				date := "-"
				if h := obj.Header(); h != nil && h.ScriptDate() != "" {
					date = h.ScriptDate()
				}

				schema := obj.Schema()
				if schema == "" {
					schema = "-"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", obj.TypeCode(), schema, obj.Name(), date, obj.Path())
			}

			if err := w.Flush(); err != nil {
				return errors.Wrap(err, "failed to write object list")
			}

			return parseErr
		},
	}
}

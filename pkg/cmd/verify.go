package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/layout"
	"github.com/urfave/cli/v3"
)

// verify creates the verify command, which checks an output directory written
// with --manifest against its objects.sum.
//
// Every listed file is printed once it matches. Files that changed, disappeared
// or were added to FN, SP or TB since the manifest was written fail the command,
// and all of them are reported together.
//
// Example usage:
//
//	mssqlsplit --manifest AddressBook.sql
//	mssqlsplit verify AddressBook
func verify() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check an output directory against its objects.sum manifest",
		ArgsUsage: "<output_directory>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one output directory is required")
			}

			root := cmd.Args().First()
			sum, err := layout.Verify(root)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			for _, name := range sum.Names() {
				fmt.Fprintln(w, "ok", name)
			}
			fmt.Fprintf(w, "Verified %d files in %s\n", sum.Files(), root)

			return nil
		},
	}
}

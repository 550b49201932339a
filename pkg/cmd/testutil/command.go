package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command as a subcommand of a test app and returns its
// output along with any error
func RunCommand(t *testing.T, command *cli.Command, args []string) (string, error) {
	t.Helper()

	return RunCommandWithContext(context.Background(), t, command, args)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args []string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := &cli.Command{
		Name:      "test",
		Commands:  []*cli.Command{command},
		Writer:    &out,
		ErrWriter: &errOut,
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(ctx, fullArgs)
	return out.String(), err
}

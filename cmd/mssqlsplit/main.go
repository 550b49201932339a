package main

import (
	"context"
	"os"

	"github.com/pseudomuto/mssqlsplit/pkg/cmd"
	"github.com/pseudomuto/mssqlsplit/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		config.Module,
		cmd.Module,
	).Run()
}

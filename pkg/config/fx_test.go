package config_test

import (
	"testing"

	. "github.com/pseudomuto/mssqlsplit/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule(t *testing.T) {
	// A broken mssqlsplit.yaml in the working directory must not fail the
	// graph; it is reported when the CLI loads it.
	t.Chdir(t.TempDir())
	require.NoError(t, writeFile(t, "mssqlsplit.yaml", "on_error: bogus"))

	var cfg *Config
	app := fxtest.New(t, Module, fx.Populate(&cfg))
	app.RequireStart()
	defer app.RequireStop()

	require.Equal(t, Defaults(), cfg)
}

package config

import "go.uber.org/fx"

// Module provides the default configuration. The file itself is loaded by the
// CLI once flags are parsed, so a broken file is reported like any other
// command error.
var Module = fx.Module("config", fx.Provide(Defaults))

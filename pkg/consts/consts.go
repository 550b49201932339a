package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// Delimiter is the comment marker the SQL Server script generator emits in
	// front of every object definition.
	Delimiter = "/****** Object:"

	// DefaultConfigFile is the configuration file looked up in the working directory
	DefaultConfigFile = "mssqlsplit.yaml"

	// ConfigEnvVar overrides the configuration file location
	ConfigEnvVar = "MSSQLSPLIT_CONFIG"

	// ManifestFile is the name of the sum file written at the output root
	ManifestFile = "objects.sum"

	// SQLExt is the extension given to every object file
	SQLExt = ".sql"
)

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/mssqlsplit/pkg/consts"
	"github.com/stretchr/testify/require"
)

// DumpFixture is an isolated working directory holding a dump file
type DumpFixture struct {
	Dir  string
	Path string
	t    *testing.T
}

// SampleDump is a small dump with one object of each kind
const SampleDump = `USE [AddressBook]
GO
/****** Object:  UserDefinedFunction [addr].[InstitutionCountryCode]    Script Date: 1/2/2020 10:00:00 AM ******/
CREATE FUNCTION [addr].[InstitutionCountryCode] (@id INT)
RETURNS CHAR(2)
AS
BEGIN
	RETURN 'CA'
END
GO
/****** Object:  StoredProcedure [addr].[GetAddressTypes]    Script Date: 1/2/2020 10:00:01 AM ******/
CREATE PROCEDURE [addr].[GetAddressTypes]
AS
SELECT * FROM [addr].[ADDRESS_TYPES]
GO
/****** Object:  Table [addr].[ADDRESS_TYPES]    Script Date: 1/2/2020 10:00:02 AM ******/
CREATE TABLE [addr].[ADDRESS_TYPES](
	[ID] [int] NOT NULL
)
GO
`

// TestDump creates a temp directory containing dump.sql with the given content
// and changes the working directory to it for the duration of the test
func TestDump(t *testing.T, content string) *DumpFixture {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "dump.sql")
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile), "Failed to write dump file")

	t.Chdir(dir)

	return &DumpFixture{Dir: dir, Path: path, t: t}
}

// WithConfig writes content to mssqlsplit.yaml in the fixture directory and
// returns its path
func (d *DumpFixture) WithConfig(content string) string {
	d.t.Helper()

	path := filepath.Join(d.Dir, consts.DefaultConfigFile)
	require.NoError(d.t, os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), consts.ModeFile), "Failed to write config file")

	return path
}

// OutputDir returns a path below the fixture directory
func (d *DumpFixture) OutputDir(name string) string {
	return filepath.Join(d.Dir, name)
}

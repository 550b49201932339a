package dump_test

import (
	_ "embed"
	"testing"

	"github.com/pseudomuto/mssqlsplit/pkg/dump"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sample.sql
var sampleDump string

func TestSampleDump(t *testing.T) {
	name, ok := dump.ExtractDatabaseName(sampleDump)
	require.True(t, ok)
	require.Equal(t, "AddressBook", name)

	objects, err := dump.ParseAll(dump.Segment(sampleDump), dump.FailFast)
	require.NoError(t, err)
	require.Len(t, objects, 3)

	expected := []struct {
		path       string
		objectType string
		date       string
	}{
		{"FN/addr_InstitutionCountryCode_FN.sql", "UserDefinedFunction", "1/2/2020 10:00:00 AM"},
		{"SP/addr_GetAddressTypes_SP.sql", "StoredProcedure", "1/2/2020 10:00:01 AM"},
		{"TB/addr_ADDRESS_TYPES_TB.sql", "Table", "1/2/2020 10:00:02 AM"},
	}

	for i, obj := range objects {
		require.Equal(t, expected[i].path, obj.Path())
		require.NotNil(t, obj.Header())
		require.Equal(t, expected[i].objectType, obj.Header().ObjectType)
		require.Equal(t, expected[i].date, obj.Header().ScriptDate())
		require.Equal(t, obj.Name(), obj.Header().Name)
		require.NotContains(t, obj.UndatedText(), "Script Date")
		require.Contains(t, obj.Text(), "Script Date")
	}
}

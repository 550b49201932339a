package dump_test

import (
	"testing"

	"github.com/pseudomuto/mssqlsplit/pkg/dump"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		objectType string
		objectName string
		date       string
	}{
		{
			name:       "stored procedure",
			line:       "/****** Object:  StoredProcedure [addr].[GetAddressTypes]    Script Date: 1/2/2020 10:00:00 AM ******/",
			objectType: "StoredProcedure",
			objectName: "[addr].[GetAddressTypes]",
			date:       "1/2/2020 10:00:00 AM",
		},
		{
			name:       "user defined function",
			line:       "/****** Object:  UserDefinedFunction [addr].[InstitutionCountryCode]    Script Date: 2020-01-02 ******/",
			objectType: "UserDefinedFunction",
			objectName: "[addr].[InstitutionCountryCode]",
			date:       "2020-01-02",
		},
		{
			name:       "without script date",
			line:       "/****** Object:  Table [dbo].[Orders] ******/",
			objectType: "Table",
			objectName: "[dbo].[Orders]",
		},
		{
			name:       "unbracketed name",
			line:       "/****** Object:  Table dbo.Orders ******/",
			objectType: "Table",
			objectName: "dbo.Orders",
		},
		{
			name:       "bracketed name with spaces",
			line:       "/****** Object:  Table [dbo].[Order Lines]    Script Date: 3/3/2023 ******/\r",
			objectType: "Table",
			objectName: "[dbo].[Order Lines]",
			date:       "3/3/2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := dump.ParseHeader(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.objectType, h.ObjectType)
			require.Equal(t, tt.objectName, h.Name)
			require.Equal(t, tt.date, h.ScriptDate())
		})
	}
}

func TestParseHeader_Invalid(t *testing.T) {
	lines := []string{
		"",
		"CREATE TABLE [dbo].[Orders]",
		"/****** Object:  Table [dbo].[Orders]",
		"/* Comment: Table [dbo].[Orders] */",
	}

	for _, line := range lines {
		h, err := dump.ParseHeader(line)
		require.Error(t, err, line)
		require.Nil(t, h)
		require.Contains(t, err.Error(), "failed to parse object header")
	}
}

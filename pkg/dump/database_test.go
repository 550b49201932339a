package dump_test

import (
	"testing"

	"github.com/pseudomuto/mssqlsplit/pkg/dump"
	"github.com/stretchr/testify/require"
)

func TestExtractDatabaseName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{name: "use statement", text: "USE [MyDatabase]\nGO\n", expected: "MyDatabase", found: true},
		{name: "lower case", text: "use [reporting]\r\nGO\r\n", expected: "reporting", found: true},
		{name: "single line dump", text: "USE [Only]", expected: "Only", found: true},
		{name: "byte order mark", text: "\ufeffUSE [Billing]\nGO", expected: "Billing", found: true},
		{name: "underscores and digits", text: "USE [app_db_2]\n", expected: "app_db_2", found: true},
		{name: "no use statement", text: "SET ANSI_NULLS ON\nGO\n", found: false},
		{name: "use on a later line", text: "-- header\nUSE [Later]\n", found: false},
		{name: "unbracketed name", text: "USE MyDatabase\n", found: false},
		{name: "name with spaces", text: "USE [My Database]\n", found: false},
		{name: "empty", text: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, found := dump.ExtractDatabaseName(tt.text)
			require.Equal(t, tt.found, found)
			require.Equal(t, tt.expected, name)
		})
	}
}

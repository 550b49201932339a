package layout_test

import (
	_ "embed"
	"io/fs"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/dump"
	. "github.com/pseudomuto/mssqlsplit/pkg/layout"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

//go:embed testdata/sample.sql
var sampleDump string

func parseObjects(t *testing.T, text string) []*dump.Object {
	t.Helper()

	objects, err := dump.ParseAll(dump.Segment(text), dump.FailFast)
	require.NoError(t, err)
	return objects
}

func renderImage(t *testing.T, img *Image) string {
	t.Helper()

	var out strings.Builder
	err := fs.WalkDir(img.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == "." {
			return err
		}

		if d.IsDir() {
			out.WriteString("== " + path + "/ ==\n")
			return nil
		}

		data, err := fs.ReadFile(img.FS, path)
		if err != nil {
			return err
		}

		out.WriteString("== " + path + " ==\n")
		out.Write(data)
		return nil
	})
	require.NoError(t, err)

	return out.String()
}

func TestGenerateImage_Golden(t *testing.T) {
	img, err := GenerateImage(parseObjects(t, sampleDump), Options{Manifest: true})
	require.NoError(t, err)

	golden.Assert(t, renderImage(t, img), "sample.golden")
}

func TestGenerateImage(t *testing.T) {
	t.Run("empty dump still has every type directory", func(t *testing.T) {
		img, err := GenerateImage(nil, Options{})
		require.NoError(t, err)
		require.Empty(t, img.Files)

		for _, code := range []string{"FN", "SP", "TB"} {
			info, err := fs.Stat(img.FS, code)
			require.NoError(t, err)
			require.True(t, info.IsDir())
		}
	})

	t.Run("files follow dump order", func(t *testing.T) {
		img, err := GenerateImage(parseObjects(t, sampleDump), Options{})
		require.NoError(t, err)
		require.Equal(t, []string{
			"FN/addr_InstitutionCountryCode_FN.sql",
			"SP/addr_GetAddressTypes_SP.sql",
			"TB/addr_ADDRESS_TYPES_TB.sql",
		}, img.Files)
	})

	t.Run("dates are stripped by default", func(t *testing.T) {
		img, err := GenerateImage(parseObjects(t, sampleDump), Options{})
		require.NoError(t, err)

		data, err := fs.ReadFile(img.FS, "SP/addr_GetAddressTypes_SP.sql")
		require.NoError(t, err)
		require.NotContains(t, string(data), "Script Date")
		require.True(t, strings.HasPrefix(string(data), "/****** Object:  StoredProcedure [addr].[GetAddressTypes]"))
	})

	t.Run("keep dates", func(t *testing.T) {
		img, err := GenerateImage(parseObjects(t, sampleDump), Options{KeepDates: true})
		require.NoError(t, err)

		data, err := fs.ReadFile(img.FS, "SP/addr_GetAddressTypes_SP.sql")
		require.NoError(t, err)
		require.Contains(t, string(data), "Script Date: 1/2/2020 10:00:01 AM")
	})

	t.Run("manifest is listed last", func(t *testing.T) {
		img, err := GenerateImage(parseObjects(t, sampleDump), Options{Manifest: true})
		require.NoError(t, err)
		require.Len(t, img.Files, 4)
		require.Equal(t, "objects.sum", img.Files[3])
	})
}

func TestGenerateImage_Collisions(t *testing.T) {
	text := "USE [db]\n" +
		"/****** Object:  Table [a].[b_c] ******/\nCREATE TABLE [a].[b_c] (first INT)\n" +
		"/****** Object:  Table [a_b].[c] ******/\nCREATE TABLE [a_b].[c] (second INT)\n"
	objects := parseObjects(t, text)

	t.Run("overwrite keeps the later object", func(t *testing.T) {
		img, err := GenerateImage(objects, Options{Collisions: CollisionOverwrite})
		require.NoError(t, err)
		require.Equal(t, []string{"TB/a_b_c_TB.sql"}, img.Files)

		data, err := fs.ReadFile(img.FS, "TB/a_b_c_TB.sql")
		require.NoError(t, err)
		require.Contains(t, string(data), "second INT")
		require.NotContains(t, string(data), "first INT")
	})

	t.Run("error rejects the image", func(t *testing.T) {
		img, err := GenerateImage(objects, Options{Collisions: CollisionError})
		require.Nil(t, img)
		require.Error(t, err)
		require.Equal(t, ErrCollision, errors.Cause(err))
		require.Contains(t, err.Error(), "[a].[b_c] and [a_b].[c] both map to TB/a_b_c_TB.sql")
	})
}

func TestParseCollisionPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected CollisionPolicy
		wantErr  bool
	}{
		{input: "", expected: CollisionOverwrite},
		{input: "overwrite", expected: CollisionOverwrite},
		{input: "ERROR", expected: CollisionError},
		{input: "rename", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			policy, err := ParseCollisionPolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unknown collision policy")
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, policy)
		})
	}

	require.Equal(t, "overwrite", CollisionOverwrite.String())
	require.Equal(t, "error", CollisionError.String())
}

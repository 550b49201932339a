package dump_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/dump"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var mixedChunks = []string{
	"/****** Object: a ******/\nCREATE PROCEDURE [a].[one]\n",
	"/****** Object: b ******/\nCREATE VIEW [a].[two] AS SELECT 1\n",
	"/****** Object: c ******/\nCREATE TABLE [a].[three] (id INT)\n",
	"/****** Object: d ******/\nGRANT EXECUTE ON [a].[one] TO [app]\n",
}

func TestParseAll(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		objects, err := dump.ParseAll([]string{mixedChunks[0], mixedChunks[2]}, dump.FailFast)
		require.NoError(t, err)
		require.Len(t, objects, 2)
		require.Equal(t, "[a].[one]", objects[0].Name())
		require.Equal(t, "[a].[three]", objects[1].Name())
	})

	t.Run("no chunks", func(t *testing.T) {
		objects, err := dump.ParseAll(nil, dump.FailFast)
		require.NoError(t, err)
		require.Empty(t, objects)
	})

	t.Run("fail fast stops at the first bad chunk", func(t *testing.T) {
		objects, err := dump.ParseAll(mixedChunks, dump.FailFast)
		require.Error(t, err)
		require.Nil(t, objects)
		require.Contains(t, err.Error(), "object 2")

		var parseErr *dump.ParseError
		require.True(t, errors.As(err, &parseErr))
		require.Equal(t, mixedChunks[1], parseErr.Chunk)
		require.Len(t, multierr.Errors(err), 1)
	})

	t.Run("collect keeps good objects and reports every bad chunk", func(t *testing.T) {
		objects, err := dump.ParseAll(mixedChunks, dump.Collect)
		require.Error(t, err)
		require.Len(t, objects, 2)
		require.Equal(t, "[a].[one]", objects[0].Name())
		require.Equal(t, "[a].[three]", objects[1].Name())

		errs := multierr.Errors(err)
		require.Len(t, errs, 2)
		require.Contains(t, errs[0].Error(), "object 2")
		require.Contains(t, errs[1].Error(), "object 4")

		for i, e := range errs {
			var parseErr *dump.ParseError
			require.True(t, errors.As(e, &parseErr))
			require.Equal(t, mixedChunks[2*i+1], parseErr.Chunk)
		}
	})
}

func TestParseFailurePolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected dump.FailurePolicy
		wantErr  bool
	}{
		{input: "", expected: dump.FailFast},
		{input: "fail", expected: dump.FailFast},
		{input: "Collect", expected: dump.Collect},
		{input: " collect ", expected: dump.Collect},
		{input: "ignore", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			policy, err := dump.ParseFailurePolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unknown failure policy")
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, policy)
		})
	}

	require.Equal(t, "fail", dump.FailFast.String())
	require.Equal(t, "collect", dump.Collect.String())
}

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireLayout asserts that root holds the FN, SP and TB directories
func RequireLayout(t *testing.T, root string) {
	t.Helper()

	for _, code := range []string{"FN", "SP", "TB"} {
		require.DirExists(t, filepath.Join(root, code), "%s directory should exist", code)
	}
}

// RequireObjectCount asserts the number of .sql files below root/code
func RequireObjectCount(t *testing.T, root, code string, expectedCount int) {
	t.Helper()

	entries, err := os.ReadDir(filepath.Join(root, code))
	require.NoError(t, err, "Failed to read %s directory", code)

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			count++
		}
	}

	require.Equal(t, expectedCount, count, "Should have expected number of %s files", code)
}

// RequireFileExists asserts that a file exists and optionally checks its content
func RequireFileExists(t *testing.T, path string, checks ...func(content string)) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)

	if len(checks) > 0 {
		content, err := os.ReadFile(path)
		require.NoError(t, err, "Failed to read file: %s", path)

		contentStr := string(content)
		for _, check := range checks {
			check(contentStr)
		}
	}
}

// RequireFileContains returns a check function that verifies file contains text
func RequireFileContains(t *testing.T, expected string) func(string) {
	return func(content string) {
		require.Contains(t, content, expected, "File should contain: %s", expected)
	}
}

// RequireFileNotContains returns a check function that verifies file doesn't contain text
func RequireFileNotContains(t *testing.T, unexpected string) func(string) {
	return func(content string) {
		require.NotContains(t, content, unexpected, "File should not contain: %s", unexpected)
	}
}

// RequireSumFileValid asserts that a sum file exists and has valid format
func RequireSumFileValid(t *testing.T, sumPath string) {
	t.Helper()

	RequireFileExists(t, sumPath, func(content string) {
		lines := strings.Split(strings.TrimSpace(content), "\n")
		require.NotEmpty(t, lines, "Sum file should not be empty")

		// First line should be total hash
		require.True(t, strings.HasPrefix(lines[0], "h1:"), "First line should be total hash")

		for i := 1; i < len(lines); i++ {
			parts := strings.Fields(lines[i])
			require.Len(t, parts, 2, "Each line should have filename and hash")
			require.True(t, strings.HasSuffix(parts[0], ".sql"), "First part should be SQL filename")
			require.True(t, strings.HasPrefix(parts[1], "h1:"), "Second part should be hash")
		}
	})
}

// RequireNoFile asserts that a file does not exist
func RequireNoFile(t *testing.T, path string) {
	t.Helper()

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "File should not exist: %s", path)
}

// RequireNoDir asserts that a directory does not exist
func RequireNoDir(t *testing.T, path string) {
	t.Helper()

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "Directory should not exist: %s", path)
}

// RequireError asserts that an error occurred and optionally checks the message
func RequireError(t *testing.T, err error, msgContains ...string) {
	t.Helper()

	require.Error(t, err, "Expected an error")

	for _, msg := range msgContains {
		require.Contains(t, err.Error(), msg, "Error message should contain: %s", msg)
	}
}

// RequireDirEmpty asserts that a directory is empty
func RequireDirEmpty(t *testing.T, dirPath string) {
	t.Helper()

	entries, err := os.ReadDir(dirPath)
	require.NoError(t, err, "Failed to read directory")
	require.Empty(t, entries, "Directory should be empty: %s", dirPath)
}

package helpers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile creates a file with the given name in the test's temporary
// directory. The directory is removed automatically when the test is done.
func CreateTempFile(t *testing.T, fileName string) string {
	t.Helper()

	return filepath.Join(t.TempDir(), fileName)
}

// CreateTempFileWithContents creates a file with the given name and content
// in the test's temporary directory and returns its path.
func CreateTempFileWithContents(t *testing.T, fileName, content string) string {
	t.Helper()

	path := CreateTempFile(t, fileName)

	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	return path
}

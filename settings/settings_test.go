package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, `
library_path: /books
summary_size: 3
refresh_every: 8
sort_method: author
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/books", s.LibraryPath)
	assert.Equal(t, 3, s.SummarySize)
	assert.Equal(t, 8, s.RefreshEvery)
	assert.Equal(t, "author", s.SortMethod)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeSettings(t, "library_path: /books\n")
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().SummarySize, s.SummarySize)
	assert.Equal(t, Default().SortMethod, s.SortMethod)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("BOOKS_DIR", "/mnt/books")
	path := writeSettings(t, "library_path: ${BOOKS_DIR}\n")
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/books", s.LibraryPath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeSettings(t, "library_path: /books\nsummary_size: 9\n"))
	assert.Error(t, err)

	_, err = Load(writeSettings(t, "library_path: /books\nsort_method: bogus\n"))
	assert.Error(t, err)

	_, err = Load(writeSettings(t, "library_path: \"\"\nsummary_size: 2\n"))
	assert.Error(t, err, "library_path is required")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "Settings.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

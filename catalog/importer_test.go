package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidateSplitsTitle(t *testing.T) {
	entries := []Entry{{Title: "Dune: The Desert Planet"}}
	Consolidate(entries)
	assert.Equal(t, "Dune", entries[0].Title)
	assert.Equal(t, "The Desert Planet", entries[0].Subtitle)
}

func TestConsolidateKeepsExistingSubtitle(t *testing.T) {
	entries := []Entry{{Title: "Dune: Messiah", Subtitle: "Book Two"}}
	Consolidate(entries)
	assert.Equal(t, "Dune: Messiah", entries[0].Title)
	assert.Equal(t, "Book Two", entries[0].Subtitle)
}

func TestConsolidateTypography(t *testing.T) {
	entries := []Entry{{Title: "Ender's Game", Author: "O'Brien", Year: "196500"}}
	Consolidate(entries)
	assert.Equal(t, "Ender’s Game", entries[0].Title)
	assert.Equal(t, "O’Brien", entries[0].Author)
	assert.Equal(t, "1965", entries[0].Year)
}

func TestFileNameFromEntry(t *testing.T) {
	e := &Entry{
		Title:    "Dune",
		Subtitle: "The Desert Planet",
		Author:   "Frank Herbert",
		File:     FileRecord{Path: "old.epub", Kind: "epub"},
	}
	assert.Equal(t, "Dune - The Desert Planet - Frank Herbert.epub", FileNameFromEntry(e))

	// Typographic characters fold back to plain ones.
	e = &Entry{Title: "Ender’s Game", File: FileRecord{Kind: "epub"}}
	assert.Equal(t, "Ender's Game.epub", FileNameFromEntry(e))

	// No title, no canonical name.
	assert.Equal(t, "", FileNameFromEntry(&Entry{File: FileRecord{Kind: "epub"}}))
}

func TestRenameMovesFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Fiction"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Fiction", "scan0001.epub"), []byte("x"), 0o644))

	entries := []Entry{{
		Title:  "Dune",
		Author: "Frank Herbert",
		File:   FileRecord{Path: "Fiction/scan0001.epub", Kind: "epub"},
	}}
	errs := Rename(root, entries)
	assert.Empty(t, errs)
	assert.Equal(t, "Fiction/Dune - Frank Herbert.epub", entries[0].File.Path)
	assert.FileExists(t, filepath.Join(root, "Fiction", "Dune - Frank Herbert.epub"))
}

func TestRenameReportsMissingFiles(t *testing.T) {
	entries := []Entry{{
		Title: "Gone",
		File:  FileRecord{Path: "scan0002.epub", Kind: "epub"},
	}}
	errs := Rename(t.TempDir(), entries)
	assert.Len(t, errs, 1)
	// The path stays untouched on failure.
	assert.Equal(t, "scan0002.epub", entries[0].File.Path)
}

func TestLabelFromPath(t *testing.T) {
	assert.Equal(t, "Ender's Game", LabelFromPath("Fiction/Ender's_Game.epub"))
	assert.Equal(t, "sci-fi 01", LabelFromPath("sci-fi_01.pdf"))
}

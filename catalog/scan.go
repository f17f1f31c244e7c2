package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// bookKinds maps the file extensions the reader can open to their detected
// kind. Anything else found by the scan is ignored.
var bookKinds = map[string]string{
	".epub": "epub",
	".pdf":  "pdf",
	".djvu": "djvu",
	".cbz":  "cbz",
	".fb2":  "fb2",
	".txt":  "txt",
}

// FileKind returns the detected kind of a file path, or "" when the reader
// does not handle it.
func FileKind(path string) string {
	return bookKinds[strings.ToLower(filepath.Ext(path))]
}

// FindFiles walks the library root and returns a record for every book
// file, with paths relative to the root. Hidden files and directories are
// skipped.
func FindFiles(root string) ([]FileRecord, error) {
	var out []FileRecord
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		kind := FileKind(path)
		if kind == "" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, FileRecord{
			Path: filepath.ToSlash(rel),
			Kind: kind,
			Size: uint64(info.Size()),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return out, nil
}

// Import scans the library root and returns a new entry for every file the
// existing database does not know about. The initial category is derived
// from the file's parent directory, with the OS path separator mapped to
// the category separator and any literal category separator stripped.
func Import(root string, known []Entry) ([]Entry, error) {
	files, err := FindFiles(root)
	if err != nil {
		return nil, err
	}
	knownPaths := make(map[string]struct{}, len(known))
	for i := range known {
		knownPaths[known[i].File.Path] = struct{}{}
	}

	now := time.Now()
	var out []Entry
	for _, f := range files {
		if _, ok := knownPaths[f.Path]; ok {
			continue
		}
		entry := Entry{File: f, Added: now}
		if categ := CategoryFromDir(filepath.Dir(f.Path)); categ != "" {
			entry.Categories = NewPathSet(categ)
		}
		out = append(out, entry)
	}
	return out, nil
}

// CategoryFromDir derives a category path from a directory path relative
// to the library root: each directory level becomes one category level.
// "." (a file at the root) yields no category.
func CategoryFromDir(dir string) Path {
	if dir == "." || dir == "" {
		return ""
	}
	return Path(filepath.ToSlash(dir))
}

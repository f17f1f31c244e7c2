package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MetadataFilename is the library's metadata database.
const MetadataFilename = ".metadata.json"

// ImportedFilename receives the output of the importer so a bad run never
// clobbers the live database.
const ImportedFilename = ".metadata-imported.json"

// Load reads a metadata database from path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	return entries, nil
}

// Save writes a metadata database to path atomically: the entries are
// written to a temporary file in the same directory and renamed over the
// destination.
func Save(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".metadata-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write metadata: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close metadata: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace metadata %s: %w", path, err)
	}
	return nil
}

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Consolidate normalizes entries in place: "Title: Subtitle" is split when
// no subtitle is set, straight apostrophes become typographic ones, and
// years are truncated to four digits.
func Consolidate(entries []Entry) {
	for i := range entries {
		e := &entries[i]
		if e.Subtitle == "" {
			if colon := strings.IndexByte(e.Title, ':'); colon >= 0 {
				title, subtitle := e.Title[:colon], e.Title[colon+1:]
				e.Title = strings.TrimRight(title, " ")
				e.Subtitle = strings.TrimLeft(subtitle, " ")
			}
		}
		e.Title = strings.ReplaceAll(e.Title, "'", "’")
		e.Subtitle = strings.ReplaceAll(e.Subtitle, "'", "’")
		e.Author = strings.ReplaceAll(e.Author, "'", "’")
		e.Series = strings.ReplaceAll(e.Series, "'", "’")
		e.Publisher = strings.ReplaceAll(e.Publisher, "'", "’")
		if len(e.Year) > 4 {
			e.Year = e.Year[:4]
		}
	}
}

// Rename moves each entry's file to its canonical name derived from the
// metadata, updating the entry's path on success. Failures are reported
// per file and do not stop the pass.
func Rename(root string, entries []Entry) []error {
	var errs []error
	for i := range entries {
		e := &entries[i]
		name := FileNameFromEntry(e)
		if name == "" {
			continue
		}
		oldRel := e.File.Path
		newRel := filepath.ToSlash(filepath.Join(filepath.Dir(oldRel), name))
		if oldRel == newRel {
			continue
		}
		if err := os.Rename(filepath.Join(root, oldRel), filepath.Join(root, newRel)); err != nil {
			errs = append(errs, fmt.Errorf("rename %s: %w", oldRel, err))
			continue
		}
		e.File.Path = newRel
	}
	return errs
}

// FileNameFromEntry builds the canonical file name for an entry, or ""
// when the entry has no title to name it by.
func FileNameFromEntry(e *Entry) string {
	if e.Title == "" {
		return ""
	}
	base := asciify(e.Title)
	if e.Subtitle != "" {
		base += " - " + asciify(e.Subtitle)
	}
	if e.Volume != "" && e.Series == "" {
		base += " - " + e.Volume
	}
	if e.Number != "" {
		base += " - " + e.Number
	}
	if e.Author != "" {
		base += " - " + asciify(e.Author)
	}
	base += "." + e.File.Kind
	base = strings.ReplaceAll(base, "..", ".")
	return strings.ReplaceAll(base, " / ", ", ")
}

// LabelFromPath turns a file path into search terms: the stem with every
// non-alphanumeric rune (apostrophes and hyphens excepted) replaced by a
// space.
func LabelFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '\'':
			return r
		default:
			return ' '
		}
	}, stem)
}

// asciify folds the few typographic characters the consolidation pass
// introduces back to characters that are safe in file names.
func asciify(s string) string {
	replacer := strings.NewReplacer(
		"’", "'",
		"‘", "'",
		"“", "\"",
		"”", "\"",
		"–", "-",
		"—", "-",
		"…", "...",
	)
	return replacer.Replace(s)
}

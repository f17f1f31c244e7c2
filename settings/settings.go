// Package settings loads the reader's YAML configuration with environment
// variable expansion and validation.
package settings

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Settings is the persisted application configuration.
type Settings struct {
	LibraryPath string `yaml:"library_path"`
	// SummarySize is the height of the category summary in rows.
	SummarySize int `yaml:"summary_size"`
	// RefreshEvery is the number of partial refreshes between full ones.
	RefreshEvery int    `yaml:"refresh_every"`
	SortMethod   string `yaml:"sort_method"`
}

// Default returns the settings used when no file exists yet.
func Default() *Settings {
	return &Settings{
		LibraryPath:  "books",
		SummarySize:  1,
		RefreshEvery: 8,
		SortMethod:   "opened",
	}
}

// Validate checks the loaded settings.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.LibraryPath, validation.Required),
		validation.Field(&s.SummarySize, validation.Min(1), validation.Max(6)),
		validation.Field(&s.RefreshEvery, validation.Min(0)),
		validation.Field(&s.SortMethod, validation.In(
			"opened", "added", "author", "size", "kind", "title")),
	)
}

// Load reads settings from a YAML file, expanding ${VAR} references from
// the environment before parsing.
func Load(filename string) (*Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", filename, err)
	}
	s := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", filename, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate settings %s: %w", filename, err)
	}
	return s, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inkforge/rowan/catalog"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func libraryPath(cmd *cli.Command) string {
	return cmd.String("library")
}

func metadataPath(cmd *cli.Command) string {
	return filepath.Join(libraryPath(cmd), catalog.MetadataFilename)
}

func loadEntries(cmd *cli.Command) ([]catalog.Entry, error) {
	entries, err := catalog.Load(metadataPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}
	return entries, nil
}

func saveEntries(cmd *cli.Command, entries []catalog.Entry) error {
	if err := catalog.Save(metadataPath(cmd), entries); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	return nil
}

func runInitialize(ctx context.Context, cmd *cli.Command) error {
	path := metadataPath(cmd)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("metadata already exists at %s", path)
	}
	if err := saveEntries(cmd, nil); err != nil {
		return err
	}
	slog.Info("initialized library", "path", libraryPath(cmd))
	return nil
}

func runImport(ctx context.Context, cmd *cli.Command) error {
	entries, err := loadEntries(cmd)
	if err != nil {
		return err
	}

	added, err := catalog.Import(libraryPath(cmd), entries)
	if err != nil {
		return fmt.Errorf("scan library: %w", err)
	}
	if len(added) == 0 {
		slog.Info("library up to date", "books", len(entries))
		return nil
	}

	entries = append(entries, added...)
	if err := saveEntries(cmd, entries); err != nil {
		return err
	}
	for i := range added {
		slog.Info("imported", "path", added[i].File.Path, "category", added[i].Categories.Sorted())
	}
	slog.Info("import complete", "added", len(added), "books", len(entries))
	return nil
}

func runConsolidate(ctx context.Context, cmd *cli.Command) error {
	entries, err := loadEntries(cmd)
	if err != nil {
		return err
	}
	catalog.Consolidate(entries)
	if err := saveEntries(cmd, entries); err != nil {
		return err
	}
	slog.Info("consolidated metadata", "books", len(entries))
	return nil
}

func runRename(ctx context.Context, cmd *cli.Command) error {
	entries, err := loadEntries(cmd)
	if err != nil {
		return err
	}
	errs := catalog.Rename(libraryPath(cmd), entries)
	for _, err := range errs {
		slog.Error("rename", "error", err)
	}
	if err := saveEntries(cmd, entries); err != nil {
		return err
	}
	slog.Info("renamed files", "books", len(entries), "failures", len(errs))
	return nil
}

func runPrune(ctx context.Context, cmd *cli.Command) error {
	entries, err := loadEntries(cmd)
	if err != nil {
		return err
	}

	kept := entries[:0]
	removed := 0
	for i := range entries {
		full := filepath.Join(libraryPath(cmd), entries[i].File.Path)
		if _, err := os.Stat(full); err != nil {
			slog.Info("pruned", "path", entries[i].File.Path)
			removed++
			continue
		}
		kept = append(kept, entries[i])
	}
	if removed == 0 {
		slog.Info("nothing to prune", "books", len(entries))
		return nil
	}
	if err := saveEntries(cmd, kept); err != nil {
		return err
	}
	slog.Info("prune complete", "removed", removed, "books", len(kept))
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "rowan-import",
		Usage: "Maintain the metadata of a rowan library directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "library",
				Aliases: []string{"l"},
				Usage:   "Path to the library directory",
				Value:   ".",
				Sources: cli.EnvVars("ROWAN_LIBRARY"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "initialize",
				Usage:  "Create an empty metadata file in the library",
				Action: runInitialize,
			},
			{
				Name:   "import",
				Usage:  "Add books found on disk but missing from the metadata",
				Action: runImport,
			},
			{
				Name:   "consolidate",
				Usage:  "Tidy up titles, authors and years across the metadata",
				Action: runConsolidate,
			},
			{
				Name:   "rename",
				Usage:  "Rename book files after their metadata",
				Action: runRename,
			},
			{
				Name:   "prune",
				Usage:  "Drop metadata entries whose file no longer exists",
				Action: runPrune,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("rowan-import", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

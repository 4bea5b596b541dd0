package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Archive is the top-level structure for bundled export/import of a whole
// definition library, so a lab can move its plate configurations between
// machines in one file.
type Archive struct {
	Version     string       `json:"version"`
	CreatedAt   string       `json:"created_at"`
	Definitions []Definition `json:"definitions"`
}

// ExportArchive writes every definition in defs to a single JSON archive at
// the specified path.
func ExportArchive(path string, defs []Definition) error {
	archive := Archive{
		Version:     "1.0.0",
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Definitions: defs,
	}
	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal archive: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return nil
}

// ImportArchive reads an archive JSON file and returns the contained
// definitions. The caller decides how to merge them into the local library.
func ImportArchive(path string) (Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to read archive: %w", err)
	}
	var archive Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		return Archive{}, fmt.Errorf("failed to parse archive: %w", err)
	}
	if archive.Version == "" {
		return Archive{}, fmt.Errorf("invalid archive: missing version field")
	}
	if archive.Definitions == nil {
		archive.Definitions = []Definition{}
	}
	return archive, nil
}

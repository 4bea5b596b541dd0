// Package project persists plate definitions as JSON files: the raw
// parameters plus the export settings used to produce the tooling.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/platestamper/internal/export"
	"github.com/piwi3910/platestamper/internal/model"
)

// Definition ties a plate's parameters and export settings together for
// save/load. Params is stored raw (un-validated): loading a definition goes
// back through model.NewParameterSet before anything is generated.
type Definition struct {
	Name     string             `json:"name"`
	Simple   bool               `json:"simple"` // Use the stamp/mould family
	Params   model.ParameterSet `json:"params"`
	Settings export.Options     `json:"settings"`
}

// NewDefinition returns a Definition with the default parameters and an
// untitled name.
func NewDefinition() Definition {
	return Definition{
		Name:     "Untitled",
		Params:   model.DefaultParameters(),
		Settings: export.Options{SCAD: true},
	}
}

// DefaultConfigDir returns the default directory for saved definitions.
// On all platforms this is ~/.platestamper/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".platestamper")
}

// DefaultDefinitionPath returns the default path for the last-used
// definition file.
func DefaultDefinitionPath() string {
	return filepath.Join(DefaultConfigDir(), "definition.json")
}

// Save persists a Definition to the given path as JSON, creating any missing
// parent directories.
func Save(path string, def Definition) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a Definition from the given path. If the file does not exist,
// it returns NewDefinition with no error.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefinition(), nil
		}
		return Definition{}, err
	}
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

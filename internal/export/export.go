// Package export writes generated tooling to disk: OpenSCAD/STL solids,
// PDF/DXF schematics, QR-coded tool labels, and well-coordinate workbooks.
package export

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/piwi3910/platestamper/internal/csg"
	"github.com/piwi3910/platestamper/internal/scad"
)

var (
	// ErrNoFormat indicates neither SCAD nor STL output was selected.
	ErrNoFormat = errors.New("export: no output format selected")
	// ErrOpenSCADNotSet indicates an STL was requested without an OpenSCAD path.
	ErrOpenSCADNotSet = errors.New("export: OpenSCAD path is not set")
	// ErrConversionFailed indicates the OpenSCAD executable could not be run
	// or exited non-zero.
	ErrConversionFailed = errors.New("export: OpenSCAD conversion failed")
)

// Options control solid export.
type Options struct {
	SCAD         bool   `json:"scad"`          // Write the OpenSCAD description
	STL          bool   `json:"stl"`           // Convert to a triangulated mesh
	OpenSCADPath string `json:"openscad_path"` // OpenSCAD executable, required for STL
}

// Solid writes a CSG tree to the given path. A ".scad" or ".stl" extension on
// the path (case-insensitive) selects that format and is stripped from the
// base name; otherwise the Options flags choose one or both. When only an STL
// is requested, the intermediate .scad file is removed after a successful
// conversion.
func Solid(s csg.Solid, path string, opts Options) error {
	wantSCAD, wantSTL := opts.SCAD, opts.STL
	base := path
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scad":
		wantSCAD = true
		base = strings.TrimSuffix(path, filepath.Ext(path))
	case ".stl":
		wantSTL = true
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}
	if !wantSCAD && !wantSTL {
		return ErrNoFormat
	}
	if wantSTL && opts.OpenSCADPath == "" {
		return ErrOpenSCADNotSet
	}

	// The textual description is always produced; OpenSCAD consumes it for
	// the mesh conversion.
	scadPath := base + ".scad"
	text := scad.New().Render(s)
	if err := os.WriteFile(scadPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("export: writing %s: %w", scadPath, err)
	}

	if wantSTL {
		if err := convertToSTL(opts.OpenSCADPath, base+".stl", scadPath); err != nil {
			return err
		}
		if !wantSCAD {
			if err := os.Remove(scadPath); err != nil {
				return fmt.Errorf("export: removing intermediate %s: %w", scadPath, err)
			}
		}
	}
	return nil
}

// convertToSTL renders a .scad file to a mesh via the OpenSCAD executable.
func convertToSTL(openscadPath, stlPath, scadPath string) error {
	cmd := exec.Command(openscadPath, "-o", stlPath, scadPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail != "" {
			return fmt.Errorf("%w: %v: %s", ErrConversionFailed, err, detail)
		}
		return fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	return nil
}

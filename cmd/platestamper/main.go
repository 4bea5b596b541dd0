// platestamper — parametric tooling generator for multi-well plates
//
// Derives a family of agarose-pad tooling geometries (plate, insert, frame,
// topper, cutter, or the simplified stamp/mould variant) from plate
// measurements and exports them as OpenSCAD or STL solids, plus optional
// schematic, label, and well-coordinate documents.
//
// Build:
//   go build -o platestamper ./cmd/platestamper
//
// Examples:
//   platestamper -diameter 6.4 -spacing 9 -well-depth 10.9 \
//     -rows 8 -columns 12 -x-offset 14.38 -y-offset 11.24 \
//     -component insert -o insert.scad
//   platestamper -params plate96.json -component all -o out/ -stl -openscad openscad
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/platestamper/internal/csg"
	"github.com/piwi3910/platestamper/internal/export"
	"github.com/piwi3910/platestamper/internal/generate"
	"github.com/piwi3910/platestamper/internal/importer"
	"github.com/piwi3910/platestamper/internal/model"
	"github.com/piwi3910/platestamper/internal/project"
)

func main() {
	var (
		paramsPath = flag.String("params", "", "plate definition file (.json, .csv, .xlsx)")
		presetName = flag.String("preset", "", "start from a built-in plate layout (96-well, 384-well, 24-well)")
		component  = flag.String("component", "all", "component to generate: plate, insert, frame, topper, cutter, stamp, mould, or all")
		outPath    = flag.String("o", "", "output path; a .scad or .stl extension selects the format (directory when -component all)")
		wantSCAD   = flag.Bool("scad", false, "write OpenSCAD output")
		wantSTL    = flag.Bool("stl", false, "convert to STL via OpenSCAD")
		openscad   = flag.String("openscad", "", "path to the OpenSCAD executable (required for -stl)")
		simple     = flag.Bool("simple", false, "use the simplified stamp/mould tool family")
		savePath   = flag.String("save", "", "save the resolved definition as JSON")

		schematicPath = flag.String("schematic", "", "write a PDF schematic of the plate layout")
		dxfPath       = flag.String("dxf", "", "write a DXF schematic of the plate layout")
		coordsPath    = flag.String("coords", "", "write an XLSX workbook of well coordinates")
		labelsPath    = flag.String("labels", "", "write a PDF of QR-coded tool labels")

		diameter    = flag.Float64("diameter", 0, "well diameter in mm")
		spacing     = flag.Float64("spacing", 0, "well centre-to-centre spacing in mm")
		wellDepth   = flag.Float64("well-depth", 0, "well depth in mm")
		rows        = flag.Int("rows", 0, "number of well rows")
		columns     = flag.Int("columns", 0, "number of well columns")
		xOffset     = flag.Float64("x-offset", 0, "first well centre from the short edge in mm")
		yOffset     = flag.Float64("y-offset", 0, "first well centre from the long edge in mm")
		plateHeight = flag.Float64("plate-height", 0, "plate height in mm")
		square      = flag.Float64("square", 0, "square well size in mm (switches wells from round to square)")
	)
	flag.Parse()

	def, err := loadDefinition(*paramsPath)
	if err != nil {
		fail("%v", err)
	}
	if *presetName != "" {
		preset, ok := project.Preset(*presetName)
		if !ok {
			fail("Unknown preset %q; built-ins are 96-well, 384-well, and 24-well", *presetName)
		}
		def = preset
	}

	// Flag overrides beat the definition file.
	if *diameter > 0 {
		def.Params.WellDiameter = *diameter
	}
	if *spacing > 0 {
		def.Params.WellSpacing = *spacing
	}
	if *wellDepth > 0 {
		def.Params.WellDepth = *wellDepth
	}
	if *rows > 0 {
		def.Params.Rows = *rows
	}
	if *columns > 0 {
		def.Params.Columns = *columns
	}
	if *xOffset > 0 {
		def.Params.WellXOffset = *xOffset
	}
	if *yOffset > 0 {
		def.Params.WellYOffset = *yOffset
	}
	if *plateHeight > 0 {
		def.Params.PlateHeight = *plateHeight
	}
	if *square > 0 {
		def.Params.CuboidWellSize = *square
	}
	if *simple {
		def.Simple = true
	}
	if *wantSCAD {
		def.Settings.SCAD = true
	}
	if *wantSTL {
		def.Settings.STL = true
	}
	if *openscad != "" {
		def.Settings.OpenSCADPath = *openscad
	}

	if *savePath != "" {
		if err := project.Save(*savePath, def); err != nil {
			fail("Failed to save definition: %v", err)
		}
	}

	ps, err := model.NewParameterSet(def.Params)
	if err != nil {
		fail("Invalid parameters: %v", err)
	}

	toolset := generate.NewAdvancedToolset(ps)
	if def.Simple {
		toolset = generate.NewSimpleToolset(ps)
	}

	if err := exportComponents(toolset, *component, *outPath, def.Settings); err != nil {
		fail("%v", err)
	}

	if *schematicPath != "" {
		if err := export.Schematic(*schematicPath, ps); err != nil {
			fail("Failed to write schematic: %v", err)
		}
	}
	if *dxfPath != "" {
		if err := export.DXFSchematic(*dxfPath, ps); err != nil {
			fail("Failed to write DXF schematic: %v", err)
		}
	}
	if *coordsPath != "" {
		if err := export.Coordinates(*coordsPath, ps); err != nil {
			fail("Failed to write well coordinates: %v", err)
		}
	}
	if *labelsPath != "" {
		if err := export.Labels(*labelsPath, ps, toolset.Kinds()); err != nil {
			fail("Failed to write labels: %v", err)
		}
	}
}

// loadDefinition resolves the starting definition: the defaults, a saved
// JSON definition, or an imported CSV/XLSX parameter table.
func loadDefinition(path string) (project.Definition, error) {
	if path == "" {
		return project.NewDefinition(), nil
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		def, err := project.Load(path)
		if err != nil {
			return project.Definition{}, fmt.Errorf("failed to load definition: %w", err)
		}
		return def, nil
	}

	result := importer.ImportFile(path)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		return project.Definition{}, fmt.Errorf("failed to import definition: %s", strings.Join(result.Errors, "; "))
	}
	def := project.NewDefinition()
	def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	def.Params = result.Params
	return def, nil
}

// exportComponents writes the requested component, or every component of the
// toolset's family into a directory when "all" is selected.
func exportComponents(toolset *generate.Toolset, component, outPath string, opts export.Options) error {
	if component != "all" {
		kind := model.ComponentKind(strings.ToLower(component))
		tree, err := toolset.Component(kind)
		if err != nil {
			return err
		}
		if outPath == "" {
			outPath = string(kind) + ".scad"
		}
		return exportOne(tree, outPath, string(kind), opts)
	}

	dir := outPath
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, kind := range toolset.Kinds() {
		tree, err := toolset.Component(kind)
		if err != nil {
			return err
		}
		if err := exportOne(tree, filepath.Join(dir, string(kind)), string(kind), opts); err != nil {
			return err
		}
	}
	return nil
}

func exportOne(tree csg.Solid, path, name string, opts export.Options) error {
	err := export.Solid(tree, path, opts)
	if errors.Is(err, export.ErrNoFormat) {
		// No extension and no flags: default to SCAD.
		opts.SCAD = true
		err = export.Solid(tree, path, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", name, err)
	}
	return nil
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

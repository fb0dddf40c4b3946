// Package qgisprocess drives layout exports through the qgis_process
// command line tool for installations where the tools run next to a QGIS
// install. Pdf merging is handed to an external merge command, pdfunite by
// default.
package qgisprocess

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"

	"github.com/gdey/errors"
	"github.com/go-spatial/stampa/stampa/exporter"
	"github.com/go-spatial/stampa/stampa/layouts"
	"github.com/prometheus/common/log"
)

const (
	// TYPE is the name of the exporter
	TYPE = "qgis_process"

	// DefaultBinary is the qgis_process executable looked up on PATH
	DefaultBinary = "qgis_process"

	// DefaultMergeCommand concatenates pdfs; anything with a
	// `cmd in... out` calling convention works.
	DefaultMergeCommand = "pdfunite"

	// AlgPDF is the processing algorithm that exports one layout to pdf
	AlgPDF = "native:printlayouttopdf"
	// AlgImage is the processing algorithm that exports one layout to an image
	AlgImage = "native:printlayouttoimage"

	// ConfigKeyBinary is the config key for the qgis_process executable
	ConfigKeyBinary = "binary"
	// ConfigKeyProject is the config key for the project file handed to the algorithms
	ConfigKeyProject = "project"
	// ConfigKeyMergeCommand is the config key for the pdf merge executable
	ConfigKeyMergeCommand = "merge_command"

	// ErrMissingProject is returned when the configured value for the project is missing.
	ErrMissingProject = errors.String("error " + ConfigKeyProject + " missing value")
)

// commandContext is swapped out in tests.
var commandContext = exec.CommandContext

func initFunc(cfg exporter.Config) (exporter.Exporter, error) {
	binary := DefaultBinary
	binary, err := cfg.String(ConfigKeyBinary, &binary)
	if err != nil {
		return nil, err
	}

	project, err := cfg.String(ConfigKeyProject, nil)
	if err != nil {
		return nil, err
	}
	if project == "" {
		return nil, ErrMissingProject
	}

	mergeCommand := DefaultMergeCommand
	mergeCommand, err = cfg.String(ConfigKeyMergeCommand, &mergeCommand)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		Binary:       binary,
		Project:      project,
		MergeCommand: mergeCommand,
	}, nil
}

func init() {
	exporter.Register(TYPE, initFunc, nil)
}

// Exporter runs qgis_process for each export.
type Exporter struct {
	// Binary is the qgis_process executable
	Binary string
	// Project file handed to the layout algorithms
	Project string
	// MergeCommand concatenates pdfs
	MergeCommand string
}

func (e *Exporter) run(ctx context.Context, alg string, params []string) error {
	args := append([]string{"run", alg, "--"}, params...)
	cmd := commandContext(ctx, e.Binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "error running %v %v: %s", e.Binary, alg, out)
	}
	return nil
}

func (e *Exporter) pdfParams(layout layouts.Layout, path string, opts exporter.PDFOptions) []string {
	return []string{
		fmt.Sprintf("PROJECT_PATH=%v", e.Project),
		fmt.Sprintf("LAYOUT=%v", layout.Name),
		fmt.Sprintf("DPI=%v", opts.DPI),
		fmt.Sprintf("IMAGE_COMPRESSION=%v", opts.JPEGQuality),
		// always produce the georeferencing information; the caller
		// strips the sidecar files afterwards when they are not wanted.
		"GEOREFERENCE=true",
		fmt.Sprintf("OUTPUT=%v", path),
	}
}

func (e *Exporter) jpegParams(layout layouts.Layout, path string, opts exporter.JPEGOptions) []string {
	return []string{
		fmt.Sprintf("PROJECT_PATH=%v", e.Project),
		fmt.Sprintf("LAYOUT=%v", layout.Name),
		fmt.Sprintf("DPI=%v", opts.DPI),
		fmt.Sprintf("QUALITY=%v", opts.Quality),
		"GEOREFERENCE=true",
		fmt.Sprintf("OUTPUT=%v", path),
	}
}

// ExportPDF implements the exporter.Exporter interface
func (e *Exporter) ExportPDF(ctx context.Context, layout layouts.Layout, path string, opts exporter.PDFOptions) error {
	log.Infof("exporting layout %v to pdf %v at %v dpi", layout.Name, path, opts.DPI)
	return e.run(ctx, AlgPDF, e.pdfParams(layout, path, opts))
}

// ExportJPEG implements the exporter.Exporter interface
func (e *Exporter) ExportJPEG(ctx context.Context, layout layouts.Layout, path string, opts exporter.JPEGOptions) error {
	log.Infof("exporting layout %v to jpeg %v at %v dpi", layout.Name, path, opts.DPI)
	return e.run(ctx, AlgImage, e.jpegParams(layout, path, opts))
}

// NewDocument implements the exporter.Exporter interface
func (e *Exporter) NewDocument(ctx context.Context, path string) (exporter.Document, error) {
	return &document{
		path:  path,
		merge: e.MergeCommand,
	}, nil
}

// document accumulates pages by merging each appended pdf onto the pdf at
// path with the merge command.
type document struct {
	path  string
	merge string
	parts int
}

// Append implements the exporter.Document interface
func (d *document) Append(ctx context.Context, path string) error {
	if d.parts == 0 {
		// first set of pages, just take the file as a whole.
		if err := copyFile(path, d.path); err != nil {
			return err
		}
		d.parts++
		return nil
	}

	tmp := d.path + ".merge"
	cmd := commandContext(ctx, d.merge, d.path, path, tmp)
	out, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "error running %v: %s", d.merge, out)
	}
	if err = os.Rename(tmp, d.path); err != nil {
		return err
	}
	d.parts++
	return nil
}

// Close implements the exporter.Document interface
func (d *document) Close() error {
	if d.parts == 0 {
		return exporter.ErrEmptyDocument
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := ioutil.ReadFile(src)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(dst, data, 0644)
}

var _ = exporter.Exporter(&Exporter{})

package stampa

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-spatial/stampa/stampa/exporter"
	"github.com/go-spatial/stampa/stampa/filestore"
	"github.com/go-spatial/stampa/stampa/status"
	"github.com/pkg/errors"
	"github.com/prometheus/common/log"
)

// TempPDFName is the name of the scratch pdf a layout is exported to before
// its pages are appended into the combined document. The name is
// deterministic; two exports into the same directory will collide.
func TempPDFName(base string, layout string) string {
	return fmt.Sprintf("%v_%v_temp.pdf", base, layout)
}

// ExportLayouts exports the named layouts, in the order given, as described
// by req. For pdf the layouts are merged into one document at the output
// path; for jpeg each layout becomes its own image in the output directory.
// The path returned is the combined document, or the directory holding the
// images.
func (s *Stampa) ExportLayouts(ctx context.Context, layoutNames []string, req ExportRequest) (string, error) {
	if req.Format == FormatJPEG {
		return s.exportLayoutsJPEG(ctx, layoutNames, req)
	}
	return s.exportLayoutsPDF(ctx, layoutNames, req)
}

func (s *Stampa) exportLayoutsPDF(ctx context.Context, layoutNames []string, req ExportRequest) (string, error) {
	if err := s.validate(req); err != nil {
		return "", err
	}
	if len(layoutNames) == 0 {
		return "", ErrNoLayoutsSelected
	}

	output := req.OutputPath()
	dpi := req.DPI()

	if req.OutputDir != "" {
		if err := os.MkdirAll(req.OutputDir, os.ModePerm); err != nil {
			s.EmitError("creating "+req.OutputDir, err)
			return "", errors.Wrapf(err, "failed to create output directory %v", req.OutputDir)
		}
	}

	doc, err := s.Exporter.NewDocument(ctx, output)
	if err != nil {
		s.EmitError("creating document "+output, err)
		return "", errors.Wrapf(err, "failed to create document %v", output)
	}

	base := strings.TrimSuffix(output, filepath.Ext(output))
	opts := exporter.NewPDFOptions(dpi)

	// Each layout is exported to its own scratch pdf, appended, and the
	// scratch file removed again before the next layout starts. A failure
	// anywhere aborts the whole run without finalizing the document.
	appendLayout := func(name string) error {
		lyt, err := s.layoutFor(name)
		if err != nil {
			return err
		}
		s.Emit(status.Started{Layout: lyt.Name})

		tmp := TempPDFName(base, lyt.Name)
		if err := s.Exporter.ExportPDF(ctx, lyt, tmp, opts); err != nil {
			return errors.Wrapf(err, "failed to export layout %v", lyt.Name)
		}
		defer func() {
			if rerr := os.Remove(tmp); rerr != nil && !os.IsNotExist(rerr) {
				log.Warnf("could not remove temp file %v: %v", tmp, rerr)
			}
		}()

		s.publishIntermediate(output, tmp)

		if err := doc.Append(ctx, tmp); err != nil {
			return errors.Wrapf(err, "failed to append layout %v", lyt.Name)
		}
		s.Emit(status.Processing{Description: "appended " + lyt.Name})
		return nil
	}

	for _, name := range layoutNames {
		if err := appendLayout(name); err != nil {
			s.EmitError("merging "+name, err)
			return "", err
		}
	}

	if err := doc.Close(); err != nil {
		s.EmitError("finalizing "+output, err)
		return "", errors.Wrapf(err, "failed to finalize document %v", output)
	}

	if err := s.finishOutput(output, req); err != nil {
		return "", err
	}

	s.Emit(status.Completed{Layouts: len(layoutNames), Destination: output})
	return output, nil
}

func (s *Stampa) exportLayoutsJPEG(ctx context.Context, layoutNames []string, req ExportRequest) (string, error) {
	if s == nil {
		return "", ErrNilStampaObject
	}
	if s.Exporter == nil {
		return "", ErrNilExporter
	}
	if len(layoutNames) == 0 {
		return "", ErrNoLayoutsSelected
	}

	dir := req.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		s.EmitError("creating "+dir, err)
		return "", errors.Wrapf(err, "failed to create output directory %v", dir)
	}

	opts := exporter.NewJPEGOptions(req.DPI())

	for _, name := range layoutNames {
		lyt, err := s.layoutFor(name)
		if err != nil {
			s.EmitError("resolving layout "+name, err)
			return "", err
		}
		s.Emit(status.Started{Layout: lyt.Name})

		output := filepath.Join(dir, lyt.Name+FormatJPEG.Ext())
		if err := s.Exporter.ExportJPEG(ctx, lyt, output, opts); err != nil {
			s.EmitError("exporting "+lyt.Name, err)
			return "", errors.Wrapf(err, "failed to export layout %v", lyt.Name)
		}
		if err := s.finishOutput(output, req); err != nil {
			return "", err
		}
	}

	s.Emit(status.Completed{Layouts: len(layoutNames), Destination: dir})
	return dir, nil
}

// publishIntermediate copies a scratch pdf to the filestore as an
// intermediate artifact. Filestores not configured for intermediates skip
// the write; real errors are logged but do not abort the export.
func (s *Stampa) publishIntermediate(output string, tmp string) {
	if s == nil || s.Filestore == nil {
		return
	}
	exportID := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	fw, err := s.Filestore.FileWriter(exportID)
	if err != nil || fw == nil {
		return
	}
	if err := filestore.Copy(fw, tmp, filepath.Base(tmp), true); err != nil {
		log.Warnf("could not publish intermediate %v: %v", tmp, err)
	}
}

// Package stampa drives the host application's layout export primitives to
// produce pdf and jpeg files for one or more print layouts.
package stampa

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-spatial/stampa/stampa/exporter"
	"github.com/go-spatial/stampa/stampa/filestore"
	"github.com/go-spatial/stampa/stampa/layouts"
	"github.com/go-spatial/stampa/stampa/notifiers"
	"github.com/go-spatial/stampa/stampa/sidecar"
	"github.com/go-spatial/stampa/stampa/status"
	"github.com/go-spatial/stampa/stampa/worldfile"
	"github.com/pkg/errors"
	"github.com/prometheus/common/log"
)

// Stampa ties a layout catalog and an exporter together with the optional
// side channels (notifier, filestore) an export invocation reports through.
type Stampa struct {
	// Layouts is the catalog of print layouts in the open project
	Layouts layouts.Provider
	// Exporter drives the host's export primitives
	Exporter exporter.Exporter
	// Filestore, when set, gets a copy of every primary output
	Filestore filestore.Provider
	// Emitter, when set, receives status updates as the export runs
	Emitter notifiers.Emitter
}

// Emit will emit a notifier event if the notifier is not nil.
func (s *Stampa) Emit(se status.Enum) error {
	if s == nil || s.Emitter == nil {
		return nil
	}
	return s.Emitter.Emit(se)
}

// EmitError will emit a notifier event for a failed export
func (s *Stampa) EmitError(description string, err error) error {
	if s == nil || s.Emitter == nil || err == nil {
		return nil
	}
	return s.Emitter.Emit(status.Failed{
		Description: description,
		Error:       err,
	})
}

func (s *Stampa) validate(req ExportRequest) error {
	if s == nil {
		return ErrNilStampaObject
	}
	if s.Exporter == nil {
		return ErrNilExporter
	}
	if strings.TrimSpace(req.Filename) == "" {
		return ErrBlankFilename
	}
	return nil
}

// layoutFor resolves the layout name against the catalog.
func (s *Stampa) layoutFor(name string) (layouts.Layout, error) {
	if s.Layouts == nil {
		return layouts.Layout{}, ErrNoLayouts
	}
	lyt, err := s.Layouts.LayoutFor(name)
	if err == layouts.ErrNotFound {
		return layouts.Layout{}, ErrUnknownLayoutName(name)
	}
	return lyt, err
}

// SoleLayout returns the project's only layout. Used by the single layout
// tool, which does not take a layout selection.
func (s *Stampa) SoleLayout() (layouts.Layout, error) {
	if s == nil || s.Layouts == nil {
		return layouts.Layout{}, ErrNoLayouts
	}
	lyts, err := s.Layouts.Layouts()
	if err != nil {
		return layouts.Layout{}, err
	}
	if len(lyts) == 0 {
		return layouts.Layout{}, ErrNoLayouts
	}
	return lyts[0], nil
}

// ExportLayout exports a single layout as described by req and returns the
// path of the primary output file.
func (s *Stampa) ExportLayout(ctx context.Context, layoutName string, req ExportRequest) (string, error) {
	if err := s.validate(req); err != nil {
		return "", err
	}
	lyt, err := s.layoutFor(layoutName)
	if err != nil {
		s.EmitError("resolving layout "+layoutName, err)
		return "", err
	}

	output := req.OutputPath()
	dpi := req.DPI()

	if req.OutputDir != "" {
		if err = os.MkdirAll(req.OutputDir, os.ModePerm); err != nil {
			s.EmitError("creating "+req.OutputDir, err)
			return "", errors.Wrapf(err, "failed to create output directory %v", req.OutputDir)
		}
	}

	s.Emit(status.Started{Layout: lyt.Name})
	log.Debugf("exporting layout %v to %v at %v dpi", lyt.Name, output, dpi)

	switch req.Format {
	case FormatJPEG:
		err = s.Exporter.ExportJPEG(ctx, lyt, output, exporter.NewJPEGOptions(dpi))
	default:
		err = s.Exporter.ExportPDF(ctx, lyt, output, exporter.NewPDFOptions(dpi))
	}
	if err != nil {
		s.EmitError("exporting "+lyt.Name, err)
		return "", errors.Wrapf(err, "failed to export layout %v", lyt.Name)
	}

	if err = s.finishOutput(output, req); err != nil {
		return "", err
	}

	s.Emit(status.Completed{Layouts: 1, Destination: output})
	return output, nil
}

// finishOutput applies the georeferencing sidecar policy to the output and
// publishes it to the filestore.
func (s *Stampa) finishOutput(output string, req ExportRequest) error {
	if req.IncludeGeoreferencing {
		s.reportGeoreferencing(output)
	} else {
		removed, err := sidecar.Remove(output)
		if err != nil {
			s.EmitError("removing sidecars for "+output, err)
			return err
		}
		for _, companion := range removed {
			s.Emit(status.Processing{Description: "removed sidecar " + companion})
		}
		s.Emit(status.Processing{
			Description: fmt.Sprintf("removed %v sidecar file(s) for %v", len(removed), output),
		})
	}
	return s.publish(output, req)
}

// reportGeoreferencing tells the user the georeferencing was kept alongside
// the output, with the world file parameters when the host wrote one.
func (s *Stampa) reportGeoreferencing(output string) {
	wfPath := sidecar.WorldFile(output)
	wf, err := worldfile.Load(wfPath)
	if err != nil {
		s.Emit(status.Processing{Description: "retained georeferencing for " + output})
		return
	}
	s.Emit(status.Processing{
		Description: fmt.Sprintf(
			"retained georeferencing %v (origin %v,%v pixel size %v)",
			wfPath, wf.C, wf.F, wf.A,
		),
	})
}

// publish copies the primary output, and any retained sidecars, to the
// configured filestore. A nil filestore means local output only.
func (s *Stampa) publish(output string, req ExportRequest) error {
	if s == nil || s.Filestore == nil {
		return nil
	}
	exportID := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	fw, err := s.Filestore.FileWriter(exportID)
	if err != nil {
		return err
	}
	if fw == nil {
		return nil
	}
	if err = filestore.Copy(fw, output, filepath.Base(output), false); err != nil {
		s.EmitError("publishing "+filepath.Base(output), err)
		return err
	}
	if !req.IncludeGeoreferencing {
		return nil
	}
	for _, companion := range sidecar.Companions(output) {
		if _, serr := os.Stat(companion); os.IsNotExist(serr) {
			continue
		}
		if err = filestore.Copy(fw, companion, filepath.Base(companion), false); err != nil {
			s.EmitError("publishing "+filepath.Base(companion), err)
			return err
		}
	}
	return nil
}

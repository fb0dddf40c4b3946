// Package qgs provides a layout provider backed by a QGIS project file.
// Both the plain xml project file (.qgs) and the zipped flavor (.qgz) are
// understood. The file is re-read on every call so that a project edited in
// the host application is picked up without restarting the tool.
package qgs

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"io/ioutil"
	"strings"

	"github.com/gdey/errors"
	"github.com/go-spatial/stampa/stampa/layouts"
)

const (
	// TYPE is the name of the provider
	TYPE = "qgs"

	// ConfigKeyPath is the config key for the project file
	ConfigKeyPath = "path"

	// ErrMissingPath is returned when the configured value for the project file is missing.
	ErrMissingPath = errors.String("error " + ConfigKeyPath + " missing value")

	// ErrNoProjectFile is returned when the zip archive has no .qgs entry.
	ErrNoProjectFile = errors.String("no .qgs entry in project archive")
)

// zipMagic is the signature at the start of a zip archive; a .qgz project
// is a zip with the .qgs file inside.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

func initFunc(cfg layouts.ProviderConfig) (layouts.Provider, error) {
	path, err := cfg.String(ConfigKeyPath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error invalid for config key: %v", ConfigKeyPath)
	}
	if path == "" {
		return nil, ErrMissingPath
	}
	return Provider{Path: path}, nil
}

func init() {
	layouts.Register(TYPE, initFunc, nil)
}

// Provider reads layouts from a QGIS project file.
type Provider struct {
	// Path of the .qgs or .qgz project file
	Path string
}

// Layouts implements the layouts.Provider interface
func (p Provider) Layouts() ([]layouts.Layout, error) {
	data, err := ioutil.ReadFile(p.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading project %v", p.Path)
	}
	return ParseProject(data)
}

// LayoutFor implements the layouts.Provider interface
func (p Provider) LayoutFor(name string) (layouts.Layout, error) {
	lyts, err := p.Layouts()
	if err != nil {
		return layouts.Layout{}, err
	}
	for _, l := range lyts {
		if l.Name == name {
			return l, nil
		}
	}
	return layouts.Layout{}, layouts.ErrNotFound
}

// ParseProject parses the layouts out of the raw bytes of a project file,
// zipped or not.
func ParseProject(data []byte) ([]layouts.Layout, error) {
	if !bytes.HasPrefix(data, zipMagic) {
		return ParseLayouts(bytes.NewReader(data))
	}

	// .qgz, find the .qgs entry.
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "error reading project archive")
	}
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".qgs") {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "error opening archive entry %v", f.Name)
		}
		defer r.Close()
		return ParseLayouts(r)
	}
	return nil, ErrNoProjectFile
}

// ParseLayouts pulls the layout names out of the project xml, in document
// order. Only Layout elements directly inside the Layouts section count;
// a project without a Layouts section has zero layouts, which is not an
// error here.
func ParseLayouts(r io.Reader) ([]layouts.Layout, error) {
	var (
		lyts      []layouts.Layout
		inLayouts bool
		depth     int
	)

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return lyts, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing project xml")
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if !inLayouts {
				if el.Name.Local == "Layouts" {
					inLayouts = true
					depth = 0
				}
				continue
			}
			depth++
			if depth != 1 || el.Name.Local != "Layout" {
				continue
			}
			for _, attr := range el.Attr {
				if attr.Name.Local != "name" {
					continue
				}
				lyts = append(lyts, layouts.Layout{Name: attr.Value})
				break
			}
		case xml.EndElement:
			if !inLayouts {
				continue
			}
			if depth == 0 && el.Name.Local == "Layouts" {
				inLayouts = false
				continue
			}
			depth--
		}
	}
}

// make sure we are always adhering to the interface.
var _ = layouts.Provider(Provider{})

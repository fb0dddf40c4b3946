// Package exporter abstracts the host application's layout export
// primitives. The tools only ever drive these interfaces; what renders the
// layout is up to the registered backend.
package exporter

import (
	"context"

	"github.com/go-spatial/stampa/stampa/layouts"
)

const (
	// ImageQualityBetter is the rasterization quality passed to the pdf
	// export primitive. Not user configurable.
	ImageQualityBetter = "better"

	// DefaultJPEGQuality is the jpeg compression quality for both the jpeg
	// export and images embedded in a pdf. Not user configurable.
	DefaultJPEGQuality uint = 80
)

// PDFOptions are the options handed to the host's pdf export primitive.
type PDFOptions struct {
	// DPI the layout is rendered at
	DPI uint
	// ImageQuality of rasterized content
	ImageQuality string
	// JPEGQuality, 0-100, of embedded images
	JPEGQuality uint
	// AdaptiveImageCompression lets the host pick the compression per image
	AdaptiveImageCompression bool
}

// NewPDFOptions returns the fixed quality settings at the given dpi.
func NewPDFOptions(dpi uint) PDFOptions {
	return PDFOptions{
		DPI:                      dpi,
		ImageQuality:             ImageQualityBetter,
		JPEGQuality:              DefaultJPEGQuality,
		AdaptiveImageCompression: true,
	}
}

// JPEGOptions are the options handed to the host's jpeg export primitive.
type JPEGOptions struct {
	// DPI the layout is rendered at
	DPI uint
	// Quality, 0-100
	Quality uint
}

// NewJPEGOptions returns the fixed quality settings at the given dpi.
func NewJPEGOptions(dpi uint) JPEGOptions {
	return JPEGOptions{DPI: dpi, Quality: DefaultJPEGQuality}
}

// Exporter exports layouts through the host application. Existing files at
// the output path are silently replaced; overwrite is always enabled.
type Exporter interface {
	// ExportPDF writes the layout as a pdf to path.
	ExportPDF(ctx context.Context, layout layouts.Layout, path string, opts PDFOptions) error
	// ExportJPEG writes the layout as a jpeg to path.
	ExportJPEG(ctx context.Context, layout layouts.Layout, path string, opts JPEGOptions) error
	// NewDocument creates an empty pdf document at path that per layout
	// pdfs are appended into.
	NewDocument(ctx context.Context, path string) (Document, error)
}

// Document is an accumulating multi page pdf document.
type Document interface {
	// Append adds the pages of the pdf at path to the end of the document.
	Append(ctx context.Context, path string) error
	// Close finalizes and saves the document.
	Close() error
}

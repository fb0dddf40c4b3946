package stampa

import (
	"path/filepath"
	"strings"

	"github.com/go-spatial/stampa/stampa/internal/resolution"
)

// Format is the output format of an export.
type Format uint8

const (
	// FormatPDF exports the layout as a pdf document
	FormatPDF Format = iota
	// FormatJPEG exports the layout as a jpeg image
	FormatJPEG
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	default:
		return "PDF"
	}
}

// Ext is the file extension for the format, with the leading dot.
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	default:
		return ".pdf"
	}
}

// exts are the extensions that are considered to already match the format.
func (f Format) exts() []string {
	switch f {
	case FormatJPEG:
		return []string{".jpg", ".jpeg"}
	default:
		return []string{".pdf"}
	}
}

// ParseFormat maps the user's format choice to a Format. The match is
// case-insensitive; "jpg" is accepted for JPEG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return FormatPDF, ErrUnknownFormat(s)
	}
}

// NormalizeFilename makes sure the file name carries the extension matching
// the format. If the name already ends in a matching extension (compared
// case-insensitively) it is left alone, otherwise the extension is appended
// exactly once.
func NormalizeFilename(name string, f Format) string {
	lower := strings.ToLower(name)
	for _, ext := range f.exts() {
		if strings.HasSuffix(lower, ext) {
			return name
		}
	}
	return name + f.Ext()
}

// ExportRequest holds the user supplied parameters for one export
// invocation. It is built fresh for every invocation and never persisted.
type ExportRequest struct {
	// OutputDir is the directory the output is written into
	OutputDir string
	// Filename of the primary output. The extension does not need to match
	// the format; OutputPath will normalize it.
	Filename string
	// Resolution is the label of the resolution choice, see the
	// internal/resolution package. Unknown labels silently map to 300 DPI.
	Resolution string
	// Format of the output
	Format Format
	// IncludeGeoreferencing keeps the georeferencing sidecar files the
	// host writes next to the output. When false they are removed after
	// the export.
	IncludeGeoreferencing bool
}

// DPI the export should be rendered at.
func (r ExportRequest) DPI() uint { return resolution.DPI(r.Resolution) }

// OutputPath is the full path of the primary output file, extension
// normalized to the format.
func (r ExportRequest) OutputPath() string {
	return filepath.Join(r.OutputDir, NormalizeFilename(r.Filename, r.Format))
}

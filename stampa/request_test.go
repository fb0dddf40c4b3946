package stampa

import (
	"path/filepath"
	"testing"
)

func TestNormalizeFilename(t *testing.T) {
	type tcase struct {
		name     string
		format   Format
		expected string
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			got := NormalizeFilename(tc.name, tc.format)
			if got != tc.expected {
				t.Errorf("filename, expected %v got %v", tc.expected, got)
			}
		}
	}

	tests := map[string]tcase{
		"pdf appended":      {name: "map", format: FormatPDF, expected: "map.pdf"},
		"pdf present":       {name: "map.pdf", format: FormatPDF, expected: "map.pdf"},
		"pdf present upper": {name: "MAP.PDF", format: FormatPDF, expected: "MAP.PDF"},
		"pdf replaces nothing": {
			// a jpg name getting exported as pdf keeps the old suffix as part of the name
			name: "map.jpg", format: FormatPDF, expected: "map.jpg.pdf",
		},
		"jpg appended":      {name: "map", format: FormatJPEG, expected: "map.jpg"},
		"jpg present":       {name: "map.jpg", format: FormatJPEG, expected: "map.jpg"},
		"jpeg present":      {name: "map.jpeg", format: FormatJPEG, expected: "map.jpeg"},
		"jpeg mixed case":   {name: "map.JPeg", format: FormatJPEG, expected: "map.JPeg"},
		"dotted name":       {name: "overview.v2", format: FormatPDF, expected: "overview.v2.pdf"},
		"only appends once": {name: "map.pdf.pdf", format: FormatPDF, expected: "map.pdf.pdf"},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestParseFormat(t *testing.T) {
	type tcase struct {
		in     string
		format Format
		err    error
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.err != nil {
				if err == nil || err.Error() != tc.err.Error() {
					t.Errorf("error, expected %v got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Errorf("error, expected nil got %v", err)
				return
			}
			if got != tc.format {
				t.Errorf("format, expected %v got %v", tc.format, got)
			}
		}
	}

	tests := map[string]tcase{
		"pdf":       {in: "pdf", format: FormatPDF},
		"PDF":       {in: "PDF", format: FormatPDF},
		"jpeg":      {in: "jpeg", format: FormatJPEG},
		"jpg":       {in: "jpg", format: FormatJPEG},
		"JPEG":      {in: "JPEG", format: FormatJPEG},
		"padded":    {in: " pdf ", format: FormatPDF},
		"png":       {in: "png", err: ErrUnknownFormat("png")},
		"empty":     {in: "", err: ErrUnknownFormat("")},
		"gibberish": {in: "document", err: ErrUnknownFormat("document")},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestOutputPath(t *testing.T) {
	req := ExportRequest{
		OutputDir:  "/maps/out",
		Filename:   "Atlas",
		Resolution: "Low (150 DPI)",
		Format:     FormatPDF,
	}
	expected := filepath.Join("/maps/out", "Atlas.pdf")
	if got := req.OutputPath(); got != expected {
		t.Errorf("output path, expected %v got %v", expected, got)
	}
	if dpi := req.DPI(); dpi != 150 {
		t.Errorf("dpi, expected 150 got %v", dpi)
	}

	// unknown resolution falls back to the default silently
	req.Resolution = "draft"
	if dpi := req.DPI(); dpi != 300 {
		t.Errorf("dpi, expected 300 got %v", dpi)
	}
}

package stampa

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportLayoutsPDF(t *testing.T) {

	type tcase struct {
		layouts []string
		failOn  string
		err     bool
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			dir, err := ioutil.TempDir("", "stampa-merge")
			if err != nil {
				t.Fatalf("tempdir, expected nil got %v", err)
			}
			defer os.RemoveAll(dir)

			exp := &fakeExporter{failOn: tc.failOn}
			ntf := &collector{}
			s := &Stampa{
				Layouts:  testCatalog,
				Exporter: exp,
				Emitter:  ntf,
			}
			req := ExportRequest{
				OutputDir:  dir,
				Filename:   "combined",
				Resolution: "Medium (300 DPI)",
				Format:     FormatPDF,
			}

			output, err := s.ExportLayouts(context.Background(), tc.layouts, req)

			// whatever happened, no temp files may be left behind
			entries, derr := ioutil.ReadDir(dir)
			if derr != nil {
				t.Fatalf("readdir, expected nil got %v", derr)
			}
			for _, entry := range entries {
				if strings.HasSuffix(entry.Name(), "_temp.pdf") {
					t.Errorf("temp file, expected none got %v", entry.Name())
				}
			}

			if tc.err {
				if err == nil {
					t.Errorf("error, expected one got nil")
				}
				if exp.lastDoc != nil && exp.lastDoc.closed {
					t.Errorf("document, expected not finalized")
				}
				return
			}
			if err != nil {
				t.Errorf("error, expected nil got %v", err)
				return
			}

			expected := filepath.Join(dir, "combined.pdf")
			if output != expected {
				t.Errorf("output, expected %v got %v", expected, output)
			}
			if _, err := os.Stat(output); err != nil {
				t.Errorf("output file, expected to exist got %v", err)
			}
			if !exp.lastDoc.closed {
				t.Errorf("document, expected finalized")
			}

			// appends must follow the selection order
			if len(exp.lastDoc.appended) != len(tc.layouts) {
				t.Errorf("appended, expected %v got %v", len(tc.layouts), len(exp.lastDoc.appended))
				return
			}
			base := strings.TrimSuffix(expected, ".pdf")
			for i, name := range tc.layouts {
				want := TempPDFName(base, name)
				if exp.lastDoc.appended[i] != want {
					t.Errorf("appended[%v], expected %v got %v", i, want, exp.lastDoc.appended[i])
				}
			}

			done, ok := ntf.completed()
			if !ok {
				t.Errorf("completed status, expected one got none")
				return
			}
			if done.Layouts != len(tc.layouts) {
				t.Errorf("completed layouts, expected %v got %v", len(tc.layouts), done.Layouts)
			}
			if done.Destination != expected {
				t.Errorf("completed destination, expected %v got %v", expected, done.Destination)
			}
		}
	}

	tests := map[string]tcase{
		"selection order": {
			layouts: []string{"Detail South", "Overview", "Detail North"},
		},
		"single layout": {
			layouts: []string{"Overview"},
		},
		"failure aborts": {
			layouts: []string{"Overview", "Detail North", "Detail South"},
			failOn:  "Detail North",
			err:     true,
		},
		"unknown layout aborts": {
			layouts: []string{"Overview", "Atlantis"},
			err:     true,
		},
		"zero selected": {
			layouts: nil,
			err:     true,
		},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestExportLayoutsJPEG(t *testing.T) {
	dir, err := ioutil.TempDir("", "stampa-batch")
	if err != nil {
		t.Fatalf("tempdir, expected nil got %v", err)
	}
	defer os.RemoveAll(dir)

	target := filepath.Join(dir, "images")

	exp := &fakeExporter{sidecars: true}
	ntf := &collector{}
	s := &Stampa{
		Layouts:  testCatalog,
		Exporter: exp,
		Emitter:  ntf,
	}
	req := ExportRequest{
		OutputDir:  target,
		Filename:   "ignored",
		Resolution: "Low (150 DPI)",
		Format:     FormatJPEG,
	}

	selected := []string{"Overview", "Detail North", "Detail South"}
	output, err := s.ExportLayouts(context.Background(), selected, req)
	if err != nil {
		t.Fatalf("error, expected nil got %v", err)
	}
	if output != target {
		t.Errorf("output, expected %v got %v", target, output)
	}

	// exactly one jpg per layout, no sidecars left over
	entries, err := ioutil.ReadDir(target)
	if err != nil {
		t.Fatalf("readdir, expected nil got %v", err)
	}
	if len(entries) != len(selected) {
		for _, entry := range entries {
			t.Logf("found %v", entry.Name())
		}
		t.Fatalf("files, expected %v got %v", len(selected), len(entries))
	}
	for _, name := range selected {
		if _, err := os.Stat(filepath.Join(target, name+".jpg")); err != nil {
			t.Errorf("file %v.jpg, expected to exist got %v", name, err)
		}
	}
	if exp.lastJPEGOpts.DPI != 150 {
		t.Errorf("dpi, expected 150 got %v", exp.lastJPEGOpts.DPI)
	}

	done, ok := ntf.completed()
	if !ok {
		t.Fatalf("completed status, expected one got none")
	}
	if done.Layouts != len(selected) {
		t.Errorf("completed layouts, expected %v got %v", len(selected), done.Layouts)
	}
	if done.Destination != target {
		t.Errorf("completed destination, expected %v got %v", target, done.Destination)
	}
}

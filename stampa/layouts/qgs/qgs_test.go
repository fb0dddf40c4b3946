package qgs

import (
	"archive/zip"
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-spatial/stampa/stampa/layouts"
)

const testProject = "testdata/project.qgs"

// the layout names in testdata/project.qgs, in document order.
var testLayouts = []string{"Overview", "Detail North", "Detail South"}

func checkNames(t *testing.T, lyts []layouts.Layout, expected []string) {
	t.Helper()
	if len(lyts) != len(expected) {
		t.Fatalf("number of layouts, expected %v got %v", len(expected), len(lyts))
	}
	for i := range expected {
		if lyts[i].Name != expected[i] {
			t.Errorf("layout %v, expected %v got %v", i, expected[i], lyts[i].Name)
		}
	}
}

func TestLayouts(t *testing.T) {
	p := Provider{Path: testProject}
	lyts, err := p.Layouts()
	if err != nil {
		t.Fatalf("layouts, expected nil got %v", err)
	}
	checkNames(t, lyts, testLayouts)
}

func TestLayoutsQGZ(t *testing.T) {
	// zip the test project up the way a .qgz is.
	data, err := ioutil.ReadFile(testProject)
	if err != nil {
		t.Fatalf("read fixture, expected nil got %v", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("project.qgs")
	if err != nil {
		t.Fatalf("create entry, expected nil got %v", err)
	}
	if _, err = w.Write(data); err != nil {
		t.Fatalf("write entry, expected nil got %v", err)
	}
	if err = zw.Close(); err != nil {
		t.Fatalf("close archive, expected nil got %v", err)
	}

	dir, err := ioutil.TempDir("", "qgs")
	if err != nil {
		t.Fatalf("tempdir, expected nil got %v", err)
	}
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "project.qgz")
	if err = ioutil.WriteFile(fname, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write archive, expected nil got %v", err)
	}

	lyts, err := Provider{Path: fname}.Layouts()
	if err != nil {
		t.Fatalf("layouts, expected nil got %v", err)
	}
	checkNames(t, lyts, testLayouts)
}

func TestLayoutFor(t *testing.T) {
	type tcase struct {
		name string
		err  error
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			p := Provider{Path: testProject}
			l, err := p.LayoutFor(tc.name)
			if tc.err != nil {
				if err != tc.err {
					t.Errorf("error, expected %v got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("error, expected nil got %v", err)
			}
			if l.Name != tc.name {
				t.Errorf("layout, expected %v got %v", tc.name, l.Name)
			}
		}
	}

	tests := map[string]tcase{
		"first":          {name: "Overview"},
		"last":           {name: "Detail South"},
		"unknown":        {name: "Detail East", err: layouts.ErrNotFound},
		"case sensitive": {name: "overview", err: layouts.ErrNotFound},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestParseLayoutsEmpty(t *testing.T) {
	lyts, err := ParseLayouts(bytes.NewReader([]byte(`<qgis version="3.10"><title>empty</title></qgis>`)))
	if err != nil {
		t.Fatalf("parse, expected nil got %v", err)
	}
	if len(lyts) != 0 {
		t.Errorf("number of layouts, expected 0 got %v", len(lyts))
	}
}

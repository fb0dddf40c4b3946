package qgisprocess

import (
	"context"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-spatial/stampa/stampa/exporter"
	"github.com/go-spatial/stampa/stampa/layouts"
)

func TestPDFParams(t *testing.T) {
	e := Exporter{Binary: DefaultBinary, Project: "/proj/harbor.qgz"}
	params := e.pdfParams(layouts.Layout{Name: "Overview"}, "/out/map.pdf", exporter.NewPDFOptions(600))

	expected := []string{
		"PROJECT_PATH=/proj/harbor.qgz",
		"LAYOUT=Overview",
		"DPI=600",
		"IMAGE_COMPRESSION=80",
		"GEOREFERENCE=true",
		"OUTPUT=/out/map.pdf",
	}
	if len(params) != len(expected) {
		t.Fatalf("params, expected %v got %v", expected, params)
	}
	for i := range expected {
		if params[i] != expected[i] {
			t.Errorf("param %v, expected %v got %v", i, expected[i], params[i])
		}
	}
}

func TestJPEGParams(t *testing.T) {
	e := Exporter{Binary: DefaultBinary, Project: "/proj/harbor.qgz"}
	params := e.jpegParams(layouts.Layout{Name: "Detail North"}, "/out/Detail North.jpg", exporter.NewJPEGOptions(150))

	expected := []string{
		"PROJECT_PATH=/proj/harbor.qgz",
		"LAYOUT=Detail North",
		"DPI=150",
		"QUALITY=80",
		"GEOREFERENCE=true",
		"OUTPUT=/out/Detail North.jpg",
	}
	if len(params) != len(expected) {
		t.Fatalf("params, expected %v got %v", expected, params)
	}
	for i := range expected {
		if params[i] != expected[i] {
			t.Errorf("param %v, expected %v got %v", i, expected[i], params[i])
		}
	}
}

func TestDocument(t *testing.T) {
	dir, err := ioutil.TempDir("", "qgisprocess")
	if err != nil {
		t.Fatalf("tempdir, expected nil got %v", err)
	}
	defer os.RemoveAll(dir)

	part1 := filepath.Join(dir, "part1.pdf")
	if err := ioutil.WriteFile(part1, []byte("%PDF-1"), 0644); err != nil {
		t.Fatalf("write part, expected nil got %v", err)
	}
	part2 := filepath.Join(dir, "part2.pdf")
	if err := ioutil.WriteFile(part2, []byte("%PDF-2"), 0644); err != nil {
		t.Fatalf("write part, expected nil got %v", err)
	}

	// Swap the merge command for one that concatenates the inputs, good
	// enough to observe the accumulate-then-rename behavior.
	defer func(cc func(context.Context, string, ...string) *exec.Cmd) { commandContext = cc }(commandContext)
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		// args are: current, part, tmp
		script := `cat "$0" "$1" > "$2"`
		return exec.CommandContext(ctx, "sh", append([]string{"-c", script}, args...)...)
	}

	e := Exporter{MergeCommand: DefaultMergeCommand}
	doc, err := e.NewDocument(context.Background(), filepath.Join(dir, "Atlas.pdf"))
	if err != nil {
		t.Fatalf("new document, expected nil got %v", err)
	}

	if err := doc.Append(context.Background(), part1); err != nil {
		t.Fatalf("append 1, expected nil got %v", err)
	}
	if err := doc.Append(context.Background(), part2); err != nil {
		t.Fatalf("append 2, expected nil got %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("close, expected nil got %v", err)
	}

	data, err := ioutil.ReadFile(filepath.Join(dir, "Atlas.pdf"))
	if err != nil {
		t.Fatalf("read document, expected nil got %v", err)
	}
	if string(data) != "%PDF-1%PDF-2" {
		t.Errorf("document, expected %v got %v", "%PDF-1%PDF-2", string(data))
	}

	// no merge scratch file should be left behind
	if _, err := os.Stat(filepath.Join(dir, "Atlas.pdf.merge")); !os.IsNotExist(err) {
		t.Errorf("merge scratch file, expected not exist got %v", err)
	}
}

func TestDocumentCloseEmpty(t *testing.T) {
	e := Exporter{MergeCommand: DefaultMergeCommand}
	doc, err := e.NewDocument(context.Background(), "unused.pdf")
	if err != nil {
		t.Fatalf("new document, expected nil got %v", err)
	}
	if err := doc.Close(); err != exporter.ErrEmptyDocument {
		t.Errorf("close, expected %v got %v", exporter.ErrEmptyDocument, err)
	}
}

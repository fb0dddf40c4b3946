package sidecar

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestCompanions(t *testing.T) {
	type tcase struct {
		output string
		world  string
		aux    string
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			if got := WorldFile(tc.output); got != tc.world {
				t.Errorf("world file, expected %v got %v", tc.world, got)
			}
			if got := AuxFile(tc.output); got != tc.aux {
				t.Errorf("aux file, expected %v got %v", tc.aux, got)
			}
		}
	}

	tests := map[string]tcase{
		"jpg": {
			output: "/out/map.jpg",
			world:  "/out/map.tfw",
			aux:    "/out/map.jpg.aux.xml",
		},
		"pdf": {
			output: "/out/Atlas.pdf",
			world:  "/out/Atlas.tfw",
			aux:    "/out/Atlas.pdf.aux.xml",
		},
		"dotted name": {
			output: "/out/overview.v2.jpg",
			world:  "/out/overview.v2.tfw",
			aux:    "/out/overview.v2.jpg.aux.xml",
		},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestRemove(t *testing.T) {
	type tcase struct {
		// sidecar files to create before the call, relative to the dir
		present []string
		// expected removed files, relative to the dir
		removed []string
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			dir, err := ioutil.TempDir("", "sidecar")
			if err != nil {
				t.Fatalf("tempdir, expected nil got %v", err)
			}
			defer os.RemoveAll(dir)

			for _, name := range tc.present {
				fname := filepath.Join(dir, name)
				if err := ioutil.WriteFile(fname, []byte("x"), 0644); err != nil {
					t.Fatalf("write %v, expected nil got %v", fname, err)
				}
			}

			removed, err := Remove(filepath.Join(dir, "map.jpg"))
			if err != nil {
				t.Fatalf("remove, expected nil got %v", err)
			}

			var expected []string
			for _, name := range tc.removed {
				expected = append(expected, filepath.Join(dir, name))
			}
			sort.Strings(expected)
			sort.Strings(removed)
			if len(removed) != len(expected) {
				t.Fatalf("removed, expected %v got %v", expected, removed)
			}
			for i := range expected {
				if removed[i] != expected[i] {
					t.Errorf("removed %v, expected %v got %v", i, expected[i], removed[i])
				}
			}

			// nothing that was removed should still exist
			for _, fname := range removed {
				if _, err := os.Stat(fname); !os.IsNotExist(err) {
					t.Errorf("stat %v, expected not exist got %v", fname, err)
				}
			}
		}
	}

	tests := map[string]tcase{
		"both present": {
			present: []string{"map.tfw", "map.jpg.aux.xml"},
			removed: []string{"map.tfw", "map.jpg.aux.xml"},
		},
		"world only": {
			present: []string{"map.tfw"},
			removed: []string{"map.tfw"},
		},
		"aux only": {
			present: []string{"map.jpg.aux.xml"},
			removed: []string{"map.jpg.aux.xml"},
		},
		"none present": {},
		"unrelated files stay": {
			present: []string{"other.tfw"},
		},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestRemoveBlank(t *testing.T) {
	if _, err := Remove(""); err != ErrBlankOutput {
		t.Errorf("error, expected %v got %v", ErrBlankOutput, err)
	}
}

package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {

	type tcase struct {
		toml        string
		err         bool
		validateErr error
		providers   int
		filestores  int
		defaults    Defaults
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			conf, err := Parse(strings.NewReader(tc.toml), nil)
			if tc.err {
				if err == nil {
					t.Errorf("error, expected one got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("error, expected nil got %v", err)
				return
			}
			verr := conf.Validate()
			if tc.validateErr != nil {
				if verr == nil || verr.Error() != tc.validateErr.Error() {
					t.Errorf("validate error, expected %v got %v", tc.validateErr, verr)
				}
				return
			}
			if verr != nil {
				t.Errorf("validate error, expected nil got %v", verr)
				return
			}
			if len(conf.Providers) != tc.providers {
				t.Errorf("providers, expected %v got %v", tc.providers, len(conf.Providers))
			}
			if len(conf.FileStores) != tc.filestores {
				t.Errorf("file stores, expected %v got %v", tc.filestores, len(conf.FileStores))
			}
			if conf.Defaults != tc.defaults {
				t.Errorf("defaults, expected %+v got %+v", tc.defaults, conf.Defaults)
			}
		}
	}

	tests := map[string]tcase{
		"full": {
			toml: `
[defaults]
output_directory = "/tmp/maps"
file_name = "map"
resolution = "Medium (300 DPI)"
format = "pdf"

[notifier]
type = "screen"

[exporter]
type = "qgis_process"
project = "project.qgs"

[[providers]]
name = "main"
type = "qgs"
path = "project.qgs"

[[file_stores]]
name = "local"
type = "file"
base_path = "/tmp/published"
`,
			providers:  1,
			filestores: 1,
			defaults: Defaults{
				OutputDirectory: "/tmp/maps",
				FileName:        "map",
				Resolution:      "Medium (300 DPI)",
				Format:          "pdf",
			},
		},
		"empty": {
			toml: "",
		},
		"provider missing type": {
			toml: `
[[providers]]
name = "main"
path = "project.qgs"
`,
			validateErr: ErrProviderNoType(0),
		},
		"file store missing name": {
			toml: `
[[file_stores]]
type = "file"
base_path = "/tmp"
`,
			validateErr: ErrFileStoreNoName(0),
		},
		"bad toml": {
			toml: `defaults = `,
			err:  true,
		},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

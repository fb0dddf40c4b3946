package stampa

import (
	"reflect"
	"testing"
	"time"
)

func TestJobBase64(t *testing.T) {

	type tcase struct {
		layouts []string
		req     ExportRequest
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			job := NewJob(tc.layouts, tc.req)
			str, err := job.Base64Marshal()
			if err != nil {
				t.Errorf("marshal error, expected nil got %v", err)
				return
			}

			got, err := Base64UnmarshalJob(str)
			if err != nil {
				t.Errorf("unmarshal error, expected nil got %v", err)
				return
			}
			if !reflect.DeepEqual(got.Layouts, tc.layouts) {
				t.Errorf("layouts, expected %v got %v", tc.layouts, got.Layouts)
			}

			req, err := got.ExportRequest()
			if err != nil {
				t.Errorf("request error, expected nil got %v", err)
				return
			}
			if req != tc.req {
				t.Errorf("request, expected %+v got %+v", tc.req, req)
			}
		}
	}

	tests := map[string]tcase{
		"merge": {
			layouts: []string{"Overview", "Detail North"},
			req: ExportRequest{
				OutputDir:  "/tmp/out",
				Filename:   "combined.pdf",
				Resolution: "High (600 DPI)",
				Format:     FormatPDF,
			},
		},
		"jpeg with georeferencing": {
			layouts: []string{"Overview"},
			req: ExportRequest{
				OutputDir:             "maps",
				Filename:              "map",
				Resolution:            "Low (150 DPI)",
				Format:                FormatJPEG,
				IncludeGeoreferencing: true,
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestJobRequestedAt(t *testing.T) {
	at := time.Date(2019, 6, 10, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return at }
	defer func() { timeNow = time.Now }()

	job := NewJob([]string{"Overview"}, ExportRequest{Filename: "map"})
	if job.RequestedAt == nil {
		t.Fatalf("requested at, expected a timestamp got nil")
	}
	if job.RequestedAt.Seconds != at.Unix() {
		t.Errorf("requested at, expected %v got %v", at.Unix(), job.RequestedAt.Seconds)
	}
}

func TestBase64UnmarshalJobBad(t *testing.T) {
	if _, err := Base64UnmarshalJob("not base64!!"); err == nil {
		t.Errorf("error, expected one got nil")
	}
}

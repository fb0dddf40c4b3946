package status

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMarshalJSON(t *testing.T) {

	type tcase struct {
		status   Status
		expected string
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			gotbytes, err := json.Marshal(tc.status)
			if err != nil {
				t.Errorf("error, expected nil got %v", err)
				return
			}
			if string(gotbytes) != tc.expected {
				t.Errorf("json, expected %v got %v", tc.expected, string(gotbytes))
			}
		}
	}

	tests := map[string]tcase{
		"requested": {
			status:   Status{Requested{}},
			expected: `{"status":"requested"}`,
		},
		"started": {
			status:   Status{Started{Layout: "Overview"}},
			expected: `{"status":"started","description":"Overview"}`,
		},
		"processing": {
			status:   Status{Processing{Description: "removed sidecar map.tfw"}},
			expected: `{"status":"processing","description":"removed sidecar map.tfw"}`,
		},
		"failed": {
			status:   Status{Failed{Description: "exporting Overview", Error: errors.New("boom")}},
			expected: `{"status":"failed","description":"exporting Overview","error":"boom"}`,
		},
		"completed": {
			status:   Status{Completed{Layouts: 3, Destination: "/tmp/out/map.pdf"}},
			expected: `{"status":"completed","layouts":3,"destination":"/tmp/out/map.pdf"}`,
		},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

package worldfile

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

// tolerance is the epsilon used when comparing floats.
const tolerance = 0.000001

func cmpFloat(f1, f2 float64) bool { return math.Abs(f1-f2) < tolerance }

func TestDecode(t *testing.T) {
	type tcase struct {
		body     string
		expected WorldFile
		err      error
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			wf, err := Decode(strings.NewReader(tc.body))
			if tc.err != nil {
				if err == nil {
					t.Errorf("error, expected %v got nil", tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("error, expected nil got %v", err)
			}
			if wf != tc.expected {
				t.Errorf("world file, expected %+v got %+v", tc.expected, wf)
			}
		}
	}

	tests := map[string]tcase{
		"north up": {
			body: "0.5\n0\n0\n-0.5\n100.25\n200.25\n",
			expected: WorldFile{
				A: 0.5, E: -0.5, C: 100.25, F: 200.25,
			},
		},
		"whitespace": {
			body: " 2.0 \n0\n0\n -2.0 \n10\n20\n",
			expected: WorldFile{
				A: 2, E: -2, C: 10, F: 20,
			},
		},
		"short":     {body: "0.5\n0\n0\n", err: ErrShortFile},
		"not float": {body: "a\nb\nc\nd\ne\nf\n", err: ErrBadParameter{}},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	wf := New(0.25, 1234.5, 6789.5)
	var buf bytes.Buffer
	if err := wf.Encode(&buf); err != nil {
		t.Fatalf("encode, expected nil got %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode, expected nil got %v", err)
	}
	if got != wf {
		t.Errorf("round trip, expected %+v got %+v", wf, got)
	}
}

func TestExtent(t *testing.T) {
	type tcase struct {
		wf            WorldFile
		width, height int
		expected      [4]float64
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			ext := tc.wf.Extent(tc.width, tc.height)
			got := [4]float64{ext.MinX(), ext.MinY(), ext.MaxX(), ext.MaxY()}
			for i := range got {
				if !cmpFloat(got[i], tc.expected[i]) {
					t.Errorf("extent %v, expected %v got %v", i, tc.expected[i], got[i])
				}
			}
		}
	}

	tests := map[string]tcase{
		"unit pixels": {
			wf:    New(1, 0.5, 99.5),
			width: 100, height: 100,
			expected: [4]float64{0, 0, 100, 100},
		},
		"half meter": {
			wf:    New(0.5, 1000.25, 2000.75),
			width: 200, height: 100,
			expected: [4]float64{1000, 1951, 1100, 2001},
		},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

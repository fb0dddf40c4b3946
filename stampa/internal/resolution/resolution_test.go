package resolution

import "testing"

func TestDPI(t *testing.T) {
	type tcase struct {
		label string
		dpi   uint
	}

	fn := func(tc tcase) func(*testing.T) {
		return func(t *testing.T) {
			dpi := DPI(tc.label)
			if dpi != tc.dpi {
				t.Errorf("dpi, expected %v got %v", tc.dpi, dpi)
			}
		}
	}

	tests := map[string]tcase{
		"high":            {label: High, dpi: 600},
		"medium":          {label: Medium, dpi: 300},
		"low":             {label: Low, dpi: 150},
		"empty":           {label: "", dpi: 300},
		"unknown":         {label: "Ultra (1200 DPI)", dpi: 300},
		"case sensitive":  {label: "high (600 dpi)", dpi: 300},
		"trailing space":  {label: High + " ", dpi: 300},
		"bare dpi number": {label: "600", dpi: 300},
	}

	for name, tc := range tests {
		t.Run(name, fn(tc))
	}
}

func TestLabels(t *testing.T) {
	labels := Labels()
	if len(labels) != 3 {
		t.Fatalf("number of labels, expected 3 got %v", len(labels))
	}
	// the order is the order the choices are presented in.
	expected := []string{High, Medium, Low}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("label %v, expected %v got %v", i, expected[i], labels[i])
		}
	}
}

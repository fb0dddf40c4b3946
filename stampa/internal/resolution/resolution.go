// Package resolution maps the resolution choices presented to the user
// onto the DPI values the export primitives expect.
package resolution

import (
	"github.com/prometheus/common/log"
)

const (
	// High is the label for 600 DPI output
	High = "High (600 DPI)"
	// Medium is the label for 300 DPI output
	Medium = "Medium (300 DPI)"
	// Low is the label for 150 DPI output
	Low = "Low (150 DPI)"

	// HighDPI is the dpi for the High label
	HighDPI uint = 600
	// MediumDPI is the dpi for the Medium label
	MediumDPI uint = 300
	// LowDPI is the dpi for the Low label
	LowDPI uint = 150

	// DefaultDPI is used when the label is not one of the known choices.
	DefaultDPI = MediumDPI
)

// Labels returns the known choices in the order they should be presented.
func Labels() []string { return []string{High, Medium, Low} }

// DPI returns the dpi for the given label. An unknown label (including the
// empty string) maps to DefaultDPI; no error is ever returned, the original
// tools fall back without warning the user.
func DPI(label string) uint {
	switch label {
	case High:
		return HighDPI
	case Medium:
		return MediumDPI
	case Low:
		return LowDPI
	default:
		if label != "" {
			log.Debugf("unknown resolution %q using default dpi %v", label, DefaultDPI)
		}
		return DefaultDPI
	}
}

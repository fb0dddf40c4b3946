package stampa

import (
	"fmt"

	"github.com/gdey/errors"
)

const (
	// ErrNilLayout is returned when a nil layout is provided
	ErrNilLayout = errors.String("layout is nil")
	// ErrNilExporter is returned when the stampa object has no exporter
	ErrNilExporter = errors.String("exporter is nil")
	// ErrNilStampaObject is returned when a nil stampa object is provided
	ErrNilStampaObject = errors.String("stampa object is nil")
	// ErrBlankFilename is returned for a blank file name
	ErrBlankFilename = errors.String("blank file name")
	// ErrNoLayouts is returned when the project does not have any layouts
	ErrNoLayouts = errors.String("no layouts in project")
	// ErrNoLayoutsSelected is returned when an empty selection is provided
	ErrNoLayoutsSelected = errors.String("no layouts selected")
	// ErrNilJob is returned when a nil job is provided
	ErrNilJob = errors.String("job is nil")
)

// ErrUnknownFormat is returned when the format requested is not pdf or jpeg.
type ErrUnknownFormat string

func (euf ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown format %v", string(euf))
}

// ErrUnknownLayoutName is returned when the layout requested is not found or known.
type ErrUnknownLayoutName string

func (euln ErrUnknownLayoutName) Error() string {
	return fmt.Sprintf("unknown layout named %v", string(euln))
}

// Package status holds the progress values an export invocation reports
// through the notifiers as it runs.
package status

import (
	"encoding/json"
	"fmt"
)

const (
	requested  = "requested"
	started    = "started"
	processing = "processing"
	warning    = "warning"
	failed     = "failed"
	completed  = "completed"
)

type (
	// Status is used to hold a status value for serialization
	Status struct {
		Status Enum
	}

	// Enum is the status reference type
	Enum interface {
		fmt.Stringer

		statusenum()
	}

	// Requested is the status of an export when it is first requested
	Requested struct{}

	// Started is the status of an export that has begun running
	Started struct {
		// Layout being exported
		Layout string
	}

	// Processing is a human readable progress message
	Processing struct {
		Description string `json:"description"`
	}

	// Warning is a human readable message about something that did not
	// stop the export
	Warning struct {
		Description string `json:"description"`
	}

	// Failed is the status of an export that failed
	Failed struct {
		// Description of what was being done
		Description string `json:"description"`
		// Error as to why it failed
		Error error `json:"error"`
	}

	// Completed is the status of a successful export
	Completed struct {
		// Layouts is the number of layouts that were exported
		Layouts int `json:"layouts"`
		// Destination the output was written to
		Destination string `json:"destination"`
	}
)

func (Requested) String() string { return requested }
func (Requested) statusenum()    {}

func (s Started) String() string {
	if s.Layout == "" {
		return started
	}
	return fmt.Sprintf("%v %v", started, s.Layout)
}
func (Started) statusenum() {}

func (i Processing) String() string { return i.Description }
func (Processing) statusenum()      {}

func (w Warning) String() string { return fmt.Sprintf("%v: %v", warning, w.Description) }
func (Warning) statusenum()      {}

func (f Failed) String() string {
	return fmt.Sprintf("%v: %v : %v", failed, f.Description, f.Error)
}
func (Failed) statusenum() {}

func (c Completed) String() string {
	return fmt.Sprintf("%v: exported %v layout(s) to %v", completed, c.Layouts, c.Destination)
}
func (Completed) statusenum() {}

func (s Status) String() string {
	if s.Status == nil {
		return ""
	}
	return s.Status.String()
}

// MarshalJSON implements the json.Marshaler interface
func (s Status) MarshalJSON() ([]byte, error) {
	if s.Status == nil {
		return json.Marshal(nil)
	}

	type sentinalEnum struct {
		Type string `json:"status"`
	}
	type describedEnum struct {
		Type        string `json:"status"`
		Description string `json:"description"`
	}
	type failedEnum struct {
		Type        string `json:"status"`
		Description string `json:"description"`
		Error       string `json:"error"`
	}
	type completedEnum struct {
		Type        string `json:"status"`
		Layouts     int    `json:"layouts"`
		Destination string `json:"destination"`
	}

	var jsonval interface{}
	switch senum := s.Status.(type) {
	case Requested:
		jsonval = sentinalEnum{Type: requested}
	case Started:
		jsonval = describedEnum{Type: started, Description: senum.Layout}
	case Processing:
		jsonval = describedEnum{Type: processing, Description: senum.Description}
	case Warning:
		jsonval = describedEnum{Type: warning, Description: senum.Description}
	case Failed:
		errstr := ""
		if senum.Error != nil {
			errstr = senum.Error.Error()
		}
		jsonval = failedEnum{
			Type:        failed,
			Description: senum.Description,
			Error:       errstr,
		}
	case Completed:
		jsonval = completedEnum{
			Type:        completed,
			Layouts:     senum.Layouts,
			Destination: senum.Destination,
		}
	default:
		jsonval = sentinalEnum{Type: senum.String()}
	}
	return json.Marshal(jsonval)
}

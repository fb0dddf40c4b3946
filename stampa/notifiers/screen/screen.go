// Package screen outputs the changes in export state to the screen.
// All output is currently at the info level of the logger.
// This module is most useful for debugging
package screen

import (
	"github.com/gdey/errors"
	"github.com/go-spatial/stampa/stampa/notifiers"
	"github.com/go-spatial/stampa/stampa/status"
	"github.com/prometheus/common/log"
)

const (
	// TYPE of the notifier
	TYPE = "screen"
)

func initFunc(cfg notifiers.Config) (notifiers.Provider, error) {
	return &Provider{}, nil
}

func init() {
	notifiers.Register(TYPE, initFunc, nil)
}

// Provider supports the notifier Provider interface
type Provider struct{}

// NewEmitter returns a new emitter for the export id
func (*Provider) NewEmitter(exportID string) (notifiers.Emitter, error) {
	return &emitter{
		exportID: exportID,
		logger:   log.Base().With("export-id", exportID),
	}, nil
}

// Emitter support the notifier Emitter interface
type emitter struct {
	exportID string
	logger   log.Logger
}

// Emit notifiers the screen of the status change for the configured export
func (e *emitter) Emit(se status.Enum) error {
	if e == nil {
		return errors.String("emitter is nil")
	}
	logger := e.logger
	switch s := se.(type) {
	case status.Requested:
		logger.Infoln("export requested")
	case status.Started:
		if s.Layout != "" {
			logger.Infof("export started : %v", s.Layout)
		} else {
			logger.Infoln("export started")
		}
	case status.Processing:
		logger.Infoln(s.Description)
	case status.Warning:
		logger.Warnln(s.Description)
	case status.Failed:
		logger.Infof("export failed: %v , err: %v", s.Description, s.Error)
	case status.Completed:
		logger.Infof("export completed: %v layout(s) to %v", s.Layouts, s.Destination)
	}
	return nil
}

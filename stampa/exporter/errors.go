package exporter

import (
	"github.com/gdey/errors"
)

const (
	// ErrNoneRegistered is returned when no exporters are registered with the system
	ErrNoneRegistered = errors.String("no exporters registered")

	// ErrEmptyDocument is returned when a document is finalized without any
	// pages having been appended to it
	ErrEmptyDocument = errors.String("empty document")
)

// ErrAlreadyExists is returned when an exporter is trying to register with
// the same name as another exporter.
type ErrAlreadyExists string

func (err ErrAlreadyExists) Error() string {
	return "exporter (" + string(err) + ") already exists"
}

// ErrNotRegistered is returned when the requested exporter has not registered
type ErrNotRegistered string

func (err ErrNotRegistered) Error() string {
	return "exporter (" + string(err) + ") not registered"
}

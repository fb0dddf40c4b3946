package layouts

import (
	"github.com/gdey/errors"
)

const (
	// ErrNotFound is returned when the requested layout does not exist in
	// the project
	ErrNotFound = errors.String("layout not found")

	// ErrNoProvidersRegistered is returned when providers have not been registered with the system
	ErrNoProvidersRegistered = errors.String("no providers registered")
)

// ErrProviderTypeExists is returned when the Provider type was already registered.
type ErrProviderTypeExists string

func (err ErrProviderTypeExists) Error() string {
	return "layout provider (" + string(err) + ") already exists"
}

// ErrProviderNotRegistered is returned when the requested provider has not registered
type ErrProviderNotRegistered string

func (err ErrProviderNotRegistered) Error() string {
	return "layout provider (" + string(err) + ") not registered"
}

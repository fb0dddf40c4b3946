package config

import "fmt"

// ErrProviderNoType is returned when a provider block is missing its type
type ErrProviderNoType int

func (err ErrProviderNoType) Error() string {
	return fmt.Sprintf("error provider %v missing type", int(err))
}

// ErrProviderNoName is returned when a provider block is missing its name
type ErrProviderNoName int

func (err ErrProviderNoName) Error() string {
	return fmt.Sprintf("error provider %v missing name", int(err))
}

// ErrFileStoreNoType is returned when a file store block is missing its type
type ErrFileStoreNoType int

func (err ErrFileStoreNoType) Error() string {
	return fmt.Sprintf("error file store %v missing type", int(err))
}

// ErrFileStoreNoName is returned when a file store block is missing its name
type ErrFileStoreNoName int

func (err ErrFileStoreNoName) Error() string {
	return fmt.Sprintf("error file store %v missing name", int(err))
}

package exporter

import (
	"sort"
	"sync"

	"github.com/go-spatial/tegola/dict"
)

// ConfigKeyType is the config key naming the type of exporter to configure
const ConfigKeyType = "type"

// Config is the interface that is passed to exporter backends to configure them
type Config interface {
	dict.Dicter
}

/*****************************************************************************/

// InitFunc initializes an exporter given the config.
// InitFunc should validate the config, and report any errors.
type InitFunc func(Config) (Exporter, error)

// CleanupFunc is called when the system is shutting down.
// this allows the backend do any needed cleanup.
type CleanupFunc func()

type funcs struct {
	init    InitFunc
	cleanup CleanupFunc
}

var (
	exportersLock sync.RWMutex
	exporters     map[string]funcs
)

// Register is called by the init functions of the backend
func Register(exporterType string, init InitFunc, cleanup CleanupFunc) error {
	exportersLock.Lock()
	defer exportersLock.Unlock()

	if exporters == nil {
		exporters = make(map[string]funcs)
	}
	if _, ok := exporters[exporterType]; ok {
		return ErrAlreadyExists(exporterType)
	}
	exporters[exporterType] = funcs{
		init:    init,
		cleanup: cleanup,
	}
	return nil
}

// Unregister will remove a backend and call it's clean up function
func Unregister(exporterType string) {
	exportersLock.Lock()
	defer exportersLock.Unlock()

	e, ok := exporters[exporterType]
	if !ok {
		return // nothing to do.
	}
	if e.cleanup != nil {
		e.cleanup()
	}
	delete(exporters, exporterType)
}

// Registered returns the exporters that have been registered
func Registered() (e []string) {
	e = make([]string, len(exporters))
	i := 0
	exportersLock.RLock()
	for k := range exporters {
		e[i] = k
		i++
	}
	exportersLock.RUnlock()
	sort.Strings(e)
	return e
}

// For function returns a configured exporter of the given type, provided the correct config.
func For(exporterType string, config Config) (Exporter, error) {
	exportersLock.RLock()
	defer exportersLock.RUnlock()
	if exporters == nil {
		return nil, ErrNoneRegistered
	}
	e, ok := exporters[exporterType]
	if !ok {
		return nil, ErrNotRegistered(exporterType)
	}
	return e.init(config)
}

// From is like For but assumes that the config has a ConfigKeyType value
// informing the type of backend being configured
func From(config Config) (Exporter, error) {
	eType, err := config.String(ConfigKeyType, nil)
	if err != nil {
		return nil, err
	}
	return For(eType, config)
}

// Cleanup should be called when the system is shutting down. This gives each
// backend a chance to do any needed cleanup. This will unregister all backends.
func Cleanup() {
	exportersLock.Lock()
	for _, e := range exporters {
		if e.cleanup != nil {
			e.cleanup()
		}
	}
	exporters = make(map[string]funcs)
	exportersLock.Unlock()
}

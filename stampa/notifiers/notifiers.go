package notifiers

import "github.com/go-spatial/stampa/stampa/status"

type Emitter interface {
	Emit(status.Enum) error
}

type Provider interface {
	NewEmitter(exportID string) (Emitter, error)
}

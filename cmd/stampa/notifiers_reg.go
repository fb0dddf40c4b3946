package main

import (
	// Import the notifier backends
	"github.com/go-spatial/stampa/stampa/notifiers"
	_ "github.com/go-spatial/stampa/stampa/notifiers/http"
	_ "github.com/go-spatial/stampa/stampa/notifiers/screen"
)

func init() {
	cleanupFns = append(cleanupFns, notifiers.Cleanup)
}

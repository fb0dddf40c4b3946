package main

import (
	// Import the exporter backends
	"github.com/go-spatial/stampa/stampa/exporter"
	_ "github.com/go-spatial/stampa/stampa/exporter/qgisprocess"
)

func init() {
	cleanupFns = append(cleanupFns, exporter.Cleanup)
}

package main

import (
	// Import various layout catalog providers
	"github.com/go-spatial/stampa/stampa/layouts"
	_ "github.com/go-spatial/stampa/stampa/layouts/postgresql"
	_ "github.com/go-spatial/stampa/stampa/layouts/qgs"
)

func init() {
	cleanupFns = append(cleanupFns, layouts.Cleanup)
}

package main

import (
	// Import various filestores
	"github.com/go-spatial/stampa/stampa/filestore"
	_ "github.com/go-spatial/stampa/stampa/filestore/file"
	_ "github.com/go-spatial/stampa/stampa/filestore/multi"
	_ "github.com/go-spatial/stampa/stampa/filestore/null"
	_ "github.com/go-spatial/stampa/stampa/filestore/s3"
)

func init() {
	cleanupFns = append(cleanupFns, filestore.Cleanup)
}

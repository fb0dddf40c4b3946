// Package sidecar knows about the georeferencing sidecar files the host's
// export primitives leave next to an exported raster or pdf; the world file
// (.tfw) and the auxiliary metadata file (.aux.xml).
package sidecar

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gdey/errors"
)

const (
	// WorldFileExt is the extension of the world file companion. It replaces
	// the extension of the output, map.jpg -> map.tfw
	WorldFileExt = ".tfw"

	// AuxFileExt is the extension of the auxiliary metadata companion. It is
	// appended to the full output name, map.jpg -> map.jpg.aux.xml
	AuxFileExt = ".aux.xml"
)

// ErrPath records a failure removing a sidecar file.
type ErrPath struct {
	Filepath string
	Err      error
}

func (err ErrPath) Error() string {
	return "sidecar " + err.Filepath + ": " + err.Err.Error()
}

func (err ErrPath) Cause() error { return err.Err }

// ErrBlankOutput is returned when an empty output path is given.
const ErrBlankOutput = errors.String("blank output path")

// WorldFile returns the path of the world file companion for the output.
func WorldFile(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + WorldFileExt
}

// AuxFile returns the path of the auxiliary metadata companion for the output.
func AuxFile(output string) string { return output + AuxFileExt }

// Companions returns the sidecar paths for the output, whether they exist
// or not.
func Companions(output string) []string {
	return []string{WorldFile(output), AuxFile(output)}
}

// Remove deletes each sidecar companion of the output that exists, and
// returns the paths that were actually removed. A companion that does not
// exist is not an error; it is skipped.
func Remove(output string) (removed []string, err error) {
	if output == "" {
		return nil, ErrBlankOutput
	}
	for _, companion := range Companions(output) {
		if _, err := os.Stat(companion); os.IsNotExist(err) {
			continue
		}
		if err := os.Remove(companion); err != nil {
			return removed, ErrPath{Filepath: companion, Err: err}
		}
		removed = append(removed, companion)
	}
	return removed, nil
}
